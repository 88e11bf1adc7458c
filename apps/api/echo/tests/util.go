package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/schoolos/schoolos/apps/api/echo"
	"github.com/schoolos/schoolos/core"
	"github.com/schoolos/schoolos/core/assignment"
	"github.com/schoolos/schoolos/core/school"
	logsvc "github.com/schoolos/schoolos/services/logger"
	inmemdb "github.com/schoolos/schoolos/storage/database/inmem"
	"github.com/schoolos/schoolos/tests"
)

var (
	errAssignmentNotFound = httpErr{Detail: "Assignment not found."}
	errSectionNotFound    = httpErr{Detail: "Section not found."}
	errMockDataDisabled   = httpErr{Detail: "Mock data feature flag disabled."}
)

type testApp struct {
	Server
	conf  *core.Config
	store assignment.Store
}

func newTestConfig() *core.Config {
	return &core.Config{
		Env:            "TEST",
		TestMode:       true,
		AppName:        "SchoolOS",
		Build:          "test",
		EnableMockData: true,
		Server:         core.ServerConfig{DisableReqLogs: true},
	}
}

func setup(t *testing.T, configure ...func(conf *core.Config)) *testApp {
	conf := newTestConfig()
	for _, fn := range configure {
		fn(conf)
	}

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	store := inmemdb.NewAssignmentStore(db)

	validate, translator := testutil.NewValidate()

	srv := NewServer(
		ServerDeps{
			Conf:          conf,
			Logger:        logger,
			AssignmentSvc: assignment.NewService(store),
			SchoolSvc:     school.NewService(),
			Validate:      validate,
			Translator:    translator,
		},
	)
	return &testApp{Server: srv, conf: conf, store: store}
}

type httpErr struct {
	Detail string `json:"detail"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		if rec.Body.Len() != 0 {
			t.Errorf("failed! data = %v; want empty body", rec.Body.String())
		}
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
