package proxy

import (
	"testing"
)

func TestRoundRobin(t *testing.T) {
	list := []string{
		"http://1.1.1.1:8000",
		"http://2.2.2.2:8000",
	}

	if err := Init(list, 0); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	p1 := Global.Next()
	if p1.Host != "1.1.1.1:8000" {
		t.Errorf("Expected 1.1.1.1, got %s", p1.Host)
	}

	p2 := Global.Next()
	if p2.Host != "2.2.2.2:8000" {
		t.Errorf("Expected 2.2.2.2, got %s", p2.Host)
	}

	p3 := Global.Next()
	if p3.Host != "1.1.1.1:8000" {
		t.Errorf("Expected 1.1.1.1 (loop back), got %s", p3.Host)
	}
}

func TestEmptyPoolDisabled(t *testing.T) {
	if err := Init(nil, 0); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should be false with an empty pool")
	}
	if Global.Next() != nil {
		t.Error("Next() should return nil with an empty pool")
	}
}
