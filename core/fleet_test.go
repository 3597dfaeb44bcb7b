package core

import (
	"context"
	"net/http"
	"testing"
)

func TestFleetSnapshot_FetchesPositionAndBatteryPerVehicle(t *testing.T) {
	// Position and battery calls interleave across goroutines, so every
	// follow-up script carries a body both accessors can decode.
	followUp := okResponse(`{"status":0,"data":{"lat":1.0,"lng":2.0,"isCharging":1}}`)
	transport := &scriptedTransport{scripts: []scriptedExchange{
		{response: okResponse(`{"status":0,"data":[{"sn":"sn-1"},{"sn":"sn-2"}]}`)},
		{response: followUp},
		{response: followUp},
		{response: followUp},
		{response: followUp},
	}}
	client := newTestClient(t, transport)
	client.SetSessionToken("T123")

	snapshots, err := client.FleetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fleet snapshot: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snapshots))
	}
	for i, snapshot := range snapshots {
		if snapshot.Vehicle.SN == "" {
			t.Fatalf("snapshot %d missing vehicle", i)
		}
		if snapshot.Position == nil || snapshot.Position.Lat != 1.0 {
			t.Fatalf("snapshot %d missing position", i)
		}
		if snapshot.Battery == nil || snapshot.Battery.IsCharging != 1 {
			t.Fatalf("snapshot %d missing battery", i)
		}
	}
	if got := len(transport.requests); got != 5 {
		t.Fatalf("expected 1 list + 4 detail calls, got %d", got)
	}
}

func TestFleetSnapshot_EmptyFleet(t *testing.T) {
	transport := &scriptedTransport{scripts: []scriptedExchange{
		{response: okResponse(`{"status":0,"data":[]}`)},
	}}
	client := newTestClient(t, transport)
	client.SetSessionToken("T123")

	snapshots, err := client.FleetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("fleet snapshot: %v", err)
	}
	if len(snapshots) != 0 {
		t.Fatalf("expected empty snapshot list, got %d", len(snapshots))
	}
}

func TestFleetSnapshot_PropagatesClassifiedFailure(t *testing.T) {
	transport := &scriptedTransport{scripts: []scriptedExchange{
		{response: okResponse(`{"status":0,"data":[{"sn":"sn-1"}]}`)},
		{response: TransportResponse{StatusCode: http.StatusInternalServerError}},
	}}
	client := newTestClient(t, transport)
	client.SetSessionToken("T123")

	_, err := client.FleetSnapshot(context.Background())
	richErr := asRichError(t, err)
	if richErr.TextCode != ClientErrorProtocol {
		t.Fatalf("expected protocol failure to surface, got %q", richErr.TextCode)
	}
}
