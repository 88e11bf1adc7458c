package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/assignment"
	"github.com/schoolos/schoolos/core/school"
)

func setup(t *testing.T, client httpGetter) (*commandLine, *bytes.Buffer) {
	var out bytes.Buffer
	return &commandLine{
		conf:      &core.Config{Env: "TEST", RollbarToken: "secret", Server: core.ServerConfig{Address: ":8000"}},
		schoolSvc: school.NewService(),
		client:    client,
		out:       &out,
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func checkErr(t *testing.T, tt cliTest, err error) {
	switch {
	case tt.wantErr != nil:
		assert.Equal(t, tt.wantErr, err)
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), tt.wantErrStr)
		}
	default:
		assert.NoError(t, err)
	}
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", args: []string{}, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "unknown flag", args: []string{"fixtures", "-lol"}, wantErr: errHelp},
		{name: "unknown resource", args: []string{"fixtures", "-resource", "lol"}, wantErrStr: `"lol": unknown resource`},
		{name: "fixtures", args: []string{"fixtures"}},
		{name: "config", args: []string{"config"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t, nil)
			checkErr(t, tt, cli.run(append([]string{"admin"}, tt.args...)))
		})
	}
}

func Test_commandLine_fixtures(t *testing.T) {
	cli, out := setup(t, nil)
	require.NoError(t, cli.run([]string{"admin", "fixtures", "-resource", "assignments"}))

	var got []assignment.Assignment
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, assignment.Fixtures(), got)

	out.Reset()
	require.NoError(t, cli.run([]string{"admin", "fixtures", "-resource", "courses"}))
	var courses []school.Course
	require.NoError(t, json.Unmarshal(out.Bytes(), &courses))
	assert.Equal(t, school.NewService().Courses(), courses)
}

func Test_commandLine_config(t *testing.T) {
	cli, out := setup(t, nil)
	require.NoError(t, cli.run([]string{"admin", "config"}))

	assert.NotContains(t, out.String(), "secret")
	assert.Contains(t, out.String(), `"Env": "TEST"`)
	assert.Equal(t, "secret", cli.conf.RollbarToken, "config must not be altered")
}

type getterFunc func(url string) (*http.Response, error)

func (f getterFunc) Get(url string) (*http.Response, error) { return f(url) }

func Test_commandLine_healthcheck(t *testing.T) {
	var calledURL string
	respond := func(code int) getterFunc {
		return func(url string) (*http.Response, error) {
			calledURL = url
			rec := httptest.NewRecorder()
			rec.WriteHeader(code)
			return rec.Result(), nil
		}
	}

	tests := []struct {
		cliTest
		code    int
		wantURL string
	}{
		{cliTest: cliTest{name: "healthy", args: []string{"healthcheck"}}, code: http.StatusOK, wantURL: "http://localhost:8000/healthz"},
		{
			cliTest: cliTest{name: "custom url", args: []string{"healthcheck", "-url", "http://api:9000/healthz"}},
			code:    http.StatusOK,
			wantURL: "http://api:9000/healthz",
		},
		{
			cliTest: cliTest{name: "unhealthy", args: []string{"healthcheck"}, wantErrStr: "answered 503"},
			code:    http.StatusServiceUnavailable,
			wantURL: "http://localhost:8000/healthz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, respond(tt.code))
			checkErr(t, tt.cliTest, cli.run(append([]string{"admin"}, tt.args...)))
			assert.Equal(t, tt.wantURL, calledURL)
			if tt.wantErrStr == "" {
				assert.Equal(t, "ok", strings.TrimSpace(out.String()))
			}
		})
	}

	cli, _ := setup(t, getterFunc(func(string) (*http.Response, error) { return nil, io.ErrUnexpectedEOF }))
	err := cli.run([]string{"admin", "healthcheck"})
	assert.Error(t, err)
}

func Test_healthURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000/healthz", healthURL(":8000"))
	assert.Equal(t, "http://0.0.0.0:80/healthz", healthURL("0.0.0.0:80"))
}
