package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredMissing(t *testing.T) {
	rules := Rules{Field("beaconAddress").Required()}

	violations := rules.Apply(map[string]any{})
	assert.Equal(t, []Violation{{Field: "beaconAddress", Message: "Empty value"}}, violations)
}

func TestRequiredEmptyString(t *testing.T) {
	rules := Rules{Field("name").Required()}

	violations := rules.Apply(map[string]any{"name": ""})
	assert.Equal(t, []Violation{{Field: "name", Message: "Empty value"}}, violations)
}

func TestRequiredNull(t *testing.T) {
	rules := Rules{Field("name").Required()}

	violations := rules.Apply(map[string]any{"name": nil})
	assert.Equal(t, []Violation{{Field: "name", Message: "Empty value"}}, violations)
}

func TestOptionalAbsentIsValid(t *testing.T) {
	rules := Rules{Field("txPower").Optional().Int()}

	assert.Empty(t, rules.Apply(map[string]any{}))
}

func TestOptionalPresentIsChecked(t *testing.T) {
	rules := Rules{Field("txPower").Optional().Int()}

	assert.Empty(t, rules.Apply(map[string]any{"txPower": float64(4)}))

	violations := rules.Apply(map[string]any{"txPower": "four"})
	assert.Equal(t, []Violation{{Field: "txPower", Message: "Invalid value"}}, violations)
}

func TestIntRejectsFraction(t *testing.T) {
	rules := Rules{Field("timestamp").Required().Int()}

	violations := rules.Apply(map[string]any{"timestamp": 1000.5})
	assert.Equal(t, []Violation{{Field: "timestamp", Message: "Invalid value"}}, violations)
}

func TestDecimalAcceptsAnyNumber(t *testing.T) {
	rules := Rules{Field("distance").Required().Decimal()}

	assert.Empty(t, rules.Apply(map[string]any{"distance": 1.5}))
	assert.Empty(t, rules.Apply(map[string]any{"distance": float64(2)}))

	violations := rules.Apply(map[string]any{"distance": "1.5"})
	assert.Equal(t, []Violation{{Field: "distance", Message: "Invalid value"}}, violations)
}

func TestConditionalSkippedWhenParentAbsent(t *testing.T) {
	rules := Rules{
		Field("coordinates").Optional().Object(
			Field("x").Required().Int(),
			Field("y").Required().Int(),
		),
	}

	assert.Empty(t, rules.Apply(map[string]any{}))
}

func TestConditionalAppliedWhenParentPresent(t *testing.T) {
	rules := Rules{
		Field("coordinates").Optional().Object(
			Field("x").Required().Int(),
			Field("y").Required().Int(),
		),
	}

	violations := rules.Apply(map[string]any{
		"coordinates": map[string]any{"x": "abc"},
	})
	assert.Equal(t, []Violation{
		{Field: "coordinates.x", Message: "Invalid value"},
		{Field: "coordinates.y", Message: "Empty value"},
	}, violations)
}

func TestNonObjectParentIsViolation(t *testing.T) {
	rules := Rules{
		Field("coordinates").Optional().Object(
			Field("x").Required().Int(),
		),
	}

	violations := rules.Apply(map[string]any{"coordinates": "here"})
	assert.Equal(t, []Violation{{Field: "coordinates", Message: "Invalid value"}}, violations)
}

// A payload failing several constraints reports all of them in declaration
// order, never just the first.
func TestAllViolationsReported(t *testing.T) {
	rules := Rules{
		Field("beaconAddress").Required(),
		Field("txPower").Optional().Int(),
		Field("coordinates").Optional().Object(
			Field("x").Required().Int(),
			Field("y").Required().Int(),
		),
	}

	violations := rules.Apply(map[string]any{
		"txPower":     "strong",
		"coordinates": map[string]any{"x": "abc", "y": float64(2)},
	})
	assert.Equal(t, []Violation{
		{Field: "beaconAddress", Message: "Empty value"},
		{Field: "txPower", Message: "Invalid value"},
		{Field: "coordinates.x", Message: "Invalid value"},
	}, violations)
}

func TestValidPayloadHasNoViolations(t *testing.T) {
	rules := Rules{
		Field("beaconAddress").Required(),
		Field("txPower").Optional().Int(),
		Field("coordinates").Optional().Object(
			Field("x").Required().Int(),
			Field("y").Required().Int(),
		),
	}

	violations := rules.Apply(map[string]any{
		"beaconAddress": "AA:BB:CC:DD:EE:FF",
		"txPower":       float64(4),
		"coordinates":   map[string]any{"x": float64(1), "y": float64(2)},
	})
	assert.Empty(t, violations)
}
