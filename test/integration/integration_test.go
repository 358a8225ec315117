package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iwvelando/roi-calculator/internal/calculator"
	"github.com/iwvelando/roi-calculator/internal/config"
	"github.com/iwvelando/roi-calculator/internal/server"
	"github.com/iwvelando/roi-calculator/pkg/constants"
	"github.com/iwvelando/roi-calculator/pkg/output"
	"github.com/iwvelando/roi-calculator/pkg/testutil"
	"go.uber.org/zap"
)

// TestExampleConfigurationBaseline runs the example configuration through the
// same steps as the CLI and checks the worked-example figures.
func TestExampleConfigurationBaseline(t *testing.T) {
	conf, err := config.LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	fields, warnings := conf.FieldSet()
	if len(warnings) != 0 {
		t.Fatalf("unexpected configuration warnings: %v", warnings)
	}
	if fields.Value(calculator.DepartmentName) != "Springfield Parks & Recreation" {
		t.Errorf("unexpected department name %q", fields.Value(calculator.DepartmentName))
	}

	m := calculator.Derive(fields)
	testutil.AssertClose(t, "LaborSavings", m.LaborSavings, 50000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "AdditionalRevenue", m.AdditionalRevenue, 100000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "SoftwareSavings", m.SoftwareSavings, 5000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "TotalAnnualValue", m.TotalAnnualValue, 155000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "NetValue", m.NetValue, 145000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "ROI", m.ROI, 1450, 0.01)
	testutil.AssertClose(t, "FiveYearValue", m.FiveYearValue, 725000, constants.CurrencyTolerance)
	testutil.AssertClose(t, "PaybackMonths", m.PaybackMonths, 0.774, 0.001)

	var buf bytes.Buffer
	output.PrettyFormat(&buf, fields, m)
	if !strings.Contains(buf.String(), "Springfield Parks & Recreation") {
		t.Errorf("pretty output missing department name:\n%s", buf.String())
	}
}

// TestCLIAndServerAgree checks that the HTTP API derives the same figures as
// the library for the example configuration.
func TestCLIAndServerAgree(t *testing.T) {
	conf, err := config.LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	fields, _ := conf.FieldSet()
	expected := calculator.Derive(fields)

	body, err := json.Marshal(map[string]interface{}{"fields": fields.Values()})
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}

	handler := server.NewHandler(zap.NewNop(), server.DefaultConfig(), "integration")
	req := httptest.NewRequest(http.MethodPost, "/api/metrics", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Metrics calculator.MetricSet `json:"metrics"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Metrics != expected {
		t.Errorf("server metrics %+v differ from library metrics %+v", resp.Metrics, expected)
	}
}

// TestEditSequence replays keystrokes the way the page script sends them and
// checks that rejected keystrokes never change the form.
func TestEditSequence(t *testing.T) {
	handler := server.NewHandler(zap.NewNop(), server.DefaultConfig(), "integration")

	fields := map[string]string{}
	keystrokes := []struct {
		field    string
		value    string
		accepted bool
	}{
		{"currentRevenue", "1", true},
		{"currentRevenue", "10", true},
		{"currentRevenue", "10k", false},
		{"currentRevenue", "100", true},
		{"annualSaaS", "$", false},
		{"annualSaaS", "5", true},
		{"departmentName", "Parks!", true},
	}

	for _, ks := range keystrokes {
		body, err := json.Marshal(map[string]interface{}{"fields": fields, "field": ks.field, "value": ks.value})
		if err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/api/edit", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("edit %s=%q: status %d: %s", ks.field, ks.value, rr.Code, rr.Body.String())
		}

		var resp struct {
			Fields   map[string]string `json:"fields"`
			Accepted bool              `json:"accepted"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Accepted != ks.accepted {
			t.Errorf("edit %s=%q: accepted = %v, expected %v", ks.field, ks.value, resp.Accepted, ks.accepted)
		}
		if !ks.accepted && resp.Fields[ks.field] != fields[ks.field] {
			t.Errorf("rejected edit %s=%q changed value to %q", ks.field, ks.value, resp.Fields[ks.field])
		}
		fields = resp.Fields
	}

	if fields["currentRevenue"] != "100" || fields["annualSaaS"] != "5" || fields["departmentName"] != "Parks!" {
		t.Errorf("unexpected final state %v", fields)
	}
}
