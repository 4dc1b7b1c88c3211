package zkauth

import (
	"encoding/json"
	"math/big"
	"testing"
)

func mustElement(t *testing.T, s string) Element {
	t.Helper()
	e, err := ParseElement(s)
	if err != nil {
		t.Fatalf("ParseElement(%q): %v", s, err)
	}
	return e
}

func TestConfigurationDiscreteLogarithmRoundTrip(t *testing.T) {
	cfg := Configuration{
		Flavor: FlavorDiscreteLogarithm,
		DiscreteLogarithm: &DiscreteLogarithmParams{
			P: mustElement(t, "23"),
			Q: mustElement(t, "11"),
			G: mustElement(t, "4"),
			H: mustElement(t, "6"),
		},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var round Configuration
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatal(err)
	}

	if round.Flavor != FlavorDiscreteLogarithm {
		t.Fatalf("expected discrete-logarithm flavor, got %d", round.Flavor)
	}
	if round.EllipticCurve != nil {
		t.Fatal("expected elliptic-curve params to be nil")
	}
	if !round.DiscreteLogarithm.P.Equal(cfg.DiscreteLogarithm.P) ||
		!round.DiscreteLogarithm.Q.Equal(cfg.DiscreteLogarithm.Q) ||
		!round.DiscreteLogarithm.G.Equal(cfg.DiscreteLogarithm.G) ||
		!round.DiscreteLogarithm.H.Equal(cfg.DiscreteLogarithm.H) {
		t.Fatalf("round-tripped params differ: %+v vs %+v", round.DiscreteLogarithm, cfg.DiscreteLogarithm)
	}
}

func TestConfigurationEllipticCurveRoundTrip(t *testing.T) {
	cfg := Configuration{
		Flavor: FlavorEllipticCurve,
		EllipticCurve: &EllipticCurveParams{
			G: ElementFromBigInt(big.NewInt(123)),
			H: ElementFromBigInt(big.NewInt(456)),
		},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var round Configuration
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatal(err)
	}
	if round.Flavor != FlavorEllipticCurve || round.DiscreteLogarithm != nil {
		t.Fatalf("expected elliptic-curve-only round trip, got %+v", round)
	}
	if !round.EllipticCurve.G.Equal(cfg.EllipticCurve.G) || !round.EllipticCurve.H.Equal(cfg.EllipticCurve.H) {
		t.Fatalf("round-tripped params differ: %+v vs %+v", round.EllipticCurve, cfg.EllipticCurve)
	}
}

func TestConfigurationWireSchema(t *testing.T) {
	cfg := Configuration{
		Flavor: FlavorDiscreteLogarithm,
		DiscreteLogarithm: &DiscreteLogarithmParams{
			P: mustElement(t, "23"),
			Q: mustElement(t, "11"),
			G: mustElement(t, "4"),
			H: mustElement(t, "6"),
		},
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	dl, ok := raw["discreteLogarithm"]
	if !ok {
		t.Fatalf("expected top-level \"discreteLogarithm\" key, got %s", data)
	}
	for _, field := range []string{"p", "q", "g", "h"} {
		if _, ok := dl[field]; !ok {
			t.Fatalf("expected field %q in discreteLogarithm, got %v", field, dl)
		}
	}
	if _, ok := raw["ellipticCurve"]; ok {
		t.Fatalf("did not expect ellipticCurve key alongside discreteLogarithm, got %s", data)
	}
}

func TestConfigurationUnmarshalRejectsBothFlavors(t *testing.T) {
	data := []byte(`{"discreteLogarithm":{"p":"23","q":"11","g":"4","h":"6"},"ellipticCurve":{"g":"1","h":"2"}}`)
	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err == nil {
		t.Fatal("expected error when both flavors are present")
	}
}

func TestConfigurationUnmarshalRejectsNoFlavor(t *testing.T) {
	if err := json.Unmarshal([]byte(`{}`), &Configuration{}); err == nil {
		t.Fatal("expected error when no flavor is present")
	}
}

func TestConfigurationUnmarshalRejectsMalformedField(t *testing.T) {
	data := []byte(`{"discreteLogarithm":{"p":"023","q":"11","g":"4","h":"6"}}`)
	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err == nil {
		t.Fatal("expected error for leading-zero field")
	}
}
