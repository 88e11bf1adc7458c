package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/assignment"
	"github.com/schoolos/schoolos/core/school"
)

var errHelp = errors.New("help provided")

type httpGetter interface {
	Get(url string) (*http.Response, error)
}

type commandLine struct {
	conf      *core.Config
	schoolSvc *school.Service
	client    httpGetter
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  fixtures -resource assignments|me|stats|courses - print the mock data served by the API")
	fmt.Fprintln(cli.out, "  config - print the resolved configuration")
	fmt.Fprintln(cli.out, "  healthcheck [-url URL] - check that the API is up")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	fixturesCmd := flag.NewFlagSet("fixtures", flag.ContinueOnError)
	fixturesCmd.SetOutput(cli.out)
	fixturesResource := fixturesCmd.String("resource", "assignments", "The fixtures to print: assignments, me, stats or courses.")

	healthcheckCmd := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	healthcheckCmd.SetOutput(cli.out)
	healthcheckURL := healthcheckCmd.String("url", "", "The health endpoint. Defaults to the configured server address.")

	switch args[1] {
	case "fixtures":
		if err := fixturesCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.fixtures(*fixturesResource)
	case "config":
		return cli.printConfig()
	case "healthcheck":
		if err := healthcheckCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		url := *healthcheckURL
		if url == "" {
			url = healthURL(cli.conf.Server.Address)
		}
		return cli.healthcheck(url)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) fixtures(resource string) error {
	var data interface{}
	switch resource {
	case "assignments":
		data = assignment.Fixtures()
	case "me":
		data = cli.schoolSvc.Me()
	case "stats":
		data = cli.schoolSvc.DashboardStats()
	case "courses":
		data = cli.schoolSvc.Courses()
	default:
		return errors.Errorf("%q: unknown resource", resource)
	}
	return cli.printJSON(data)
}

func (cli *commandLine) printConfig() error {
	conf := *cli.conf
	if conf.RollbarToken != "" {
		conf.RollbarToken = "********"
	}
	return cli.printJSON(conf)
}

func (cli *commandLine) healthcheck(url string) error {
	resp, err := cli.client.Get(url)
	if err != nil {
		return errors.Wrap(err, "calling health endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unhealthy: %s answered %d", url, resp.StatusCode)
	}
	fmt.Fprintln(cli.out, "ok")
	return nil
}

func (cli *commandLine) printJSON(data interface{}) error {
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(data), "encoding output")
}

// healthURL builds the /healthz URL out of a listen address such as ":8000".
func healthURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/healthz"
}
