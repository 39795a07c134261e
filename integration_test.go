package oscquery_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/revilo196/oscquery-go/pkg/discovery"
	"github.com/revilo196/oscquery-go/pkg/model"
	"github.com/revilo196/oscquery-go/pkg/osc"
	"github.com/revilo196/oscquery-go/pkg/service"
	"github.com/revilo196/oscquery-go/pkg/unit"
)

func buildHost(t *testing.T) *model.Node {
	t.Helper()

	info := model.NewHostInfo("Integration Host", "127.0.0.1", 9000).
		WithExtAccess().
		WithExtValue().
		WithExtRange().
		WithExtDescription().
		WithExtUnit()
	root := model.NewRoot(info)

	params := []model.Parameter{
		model.NewParameter("/synth/volume", osc.Float(0.8)).
			WithDescription("Master volume").
			WithAccess(model.ReadWrite).
			WithMinMax(0, 1).
			WithUnit(unit.Linear),
		model.NewParameter("/synth/frequency", osc.Float(440)).
			WithAccess(model.ReadWrite).
			WithMinMax(20, 20000).
			WithUnit(unit.Hz),
		model.NewParameter("/status/name", osc.String("synth-1")).
			WithAccess(model.Read),
	}
	for _, p := range params {
		if err := root.Add(p); err != nil {
			t.Fatalf("Failed to add %s: %v", p.Address(), err)
		}
	}
	return root
}

// TestE2E_QueryRoundTrip serves a namespace over HTTP, fetches it back
// and decodes it into an equivalent tree.
func TestE2E_QueryRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := service.NewServer(buildHost(t), service.ServerConfig{Address: "127.0.0.1:0"})
	if err := server.Start(ctx); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	defer server.Stop()

	base := "http://" + server.Addr().String()

	res, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("Failed to fetch root: %v", err)
	}
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	var decoded model.Node
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Failed to decode tree: %v", err)
	}

	volume, err := decoded.Get("/synth/volume")
	if err != nil {
		t.Fatalf("Decoded tree is missing /synth/volume: %v", err)
	}
	if volume.TypeString() != "f" {
		t.Errorf("TypeString = %q, want %q", volume.TypeString(), "f")
	}
	if volume.Access() != model.ReadWrite {
		t.Errorf("Access = %v, want %v", volume.Access(), model.ReadWrite)
	}

	// Decoding and re-encoding preserves the exact wire form.
	reencoded, err := json.Marshal(&decoded)
	if err != nil {
		t.Fatalf("Failed to re-encode tree: %v", err)
	}
	if string(reencoded) != string(body) {
		t.Errorf("Re-encoded tree differs from the served form")
	}
}

// TestE2E_AttributeQueries exercises the attribute query surface end
// to end.
func TestE2E_AttributeQueries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := service.NewServer(buildHost(t), service.ServerConfig{Address: "127.0.0.1:0"})
	if err := server.Start(ctx); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	defer server.Stop()

	base := "http://" + server.Addr().String()

	tests := []struct {
		url    string
		status int
		body   string
	}{
		{"/synth/frequency?VALUE", http.StatusOK, `{"VALUE":[440]}`},
		{"/synth/frequency?TYPE", http.StatusOK, `{"TYPE":"f"}`},
		{"/synth?TYPE", http.StatusOK, `{"TYPE":""}`},
		{"/synth/frequency?CLIPMODE", http.StatusNoContent, ""},
		{"/no/such/address", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		res, err := http.Get(base + tt.url)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.url, err)
		}
		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			t.Fatalf("GET %s: %v", tt.url, err)
		}
		if res.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.url, res.StatusCode, tt.status)
		}
		if tt.body != "" && string(body) != tt.body {
			t.Errorf("GET %s body = %s, want %s", tt.url, body, tt.body)
		}
	}

	// HOST_INFO resolves only at the root.
	res, err := http.Get(base + "/?HOST_INFO")
	if err != nil {
		t.Fatalf("GET /?HOST_INFO: %v", err)
	}
	var info model.HostInfo
	err = json.NewDecoder(res.Body).Decode(&info)
	res.Body.Close()
	if err != nil {
		t.Fatalf("Failed to decode HOST_INFO: %v", err)
	}
	if info.Name != "Integration Host" {
		t.Errorf("NAME = %q, want %q", info.Name, "Integration Host")
	}
	if !info.Extensions.Value || info.Extensions.Listen {
		t.Errorf("Extension flags mismatch: %+v", info.Extensions)
	}
}

// TestE2E_Advertising announces the served namespace via mDNS.
func TestE2E_Advertising(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := service.NewServer(buildHost(t), service.ServerConfig{Address: "127.0.0.1:0"})
	if err := server.Start(ctx); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	defer server.Stop()

	advertiser := discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
	defer advertiser.Stop()

	info := &discovery.ServiceInfo{
		Name:         "Integration Host",
		QueryPort:    8080,
		OSCPort:      9000,
		OSCTransport: "UDP",
	}
	if err := advertiser.Advertise(ctx, info); err != nil {
		t.Fatalf("Failed to advertise: %v", err)
	}

	// A second announcement without Stop is rejected.
	if err := advertiser.Advertise(ctx, info); err == nil {
		t.Error("Expected error when advertising twice")
	}

	advertiser.Stop()
	if err := advertiser.Advertise(ctx, info); err != nil {
		t.Errorf("Advertise after Stop failed: %v", err)
	}
}
