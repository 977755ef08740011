package shipping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCarrierKind(t *testing.T) {
	tests := []struct {
		input   string
		want    CarrierKind
		wantErr bool
	}{
		{"", CarrierKindGeneric, false},
		{"generic", CarrierKindGeneric, false},
		{"SendCloud", CarrierKindSendCloud, false},
		{" sendcloud ", CarrierKindSendCloud, false},
		{"CanadaPost", CarrierKindCanadaPost, false},
		{"canada_post", CarrierKindCanadaPost, false},
		{"ARAMEX", CarrierKindAramex, false},
		{"SendClowd", CarrierKindGeneric, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCarrierKind(tt.input)
			if tt.wantErr {
				assertDomainCode(t, err, "UNKNOWN_CARRIER_KIND")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCarrierKind_RoundTripText(t *testing.T) {
	for _, k := range []CarrierKind{CarrierKindGeneric, CarrierKindSendCloud, CarrierKindCanadaPost, CarrierKindAramex} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back CarrierKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var payload struct {
		Kind CarrierKind `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"aramex"}`), &payload))
	assert.Equal(t, CarrierKindAramex, payload.Kind)
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"dhl"}`), &payload))
}

func TestCarrierKind_IsIntegration(t *testing.T) {
	assert.False(t, CarrierKindGeneric.IsIntegration())
	assert.True(t, CarrierKindSendCloud.IsIntegration())
	assert.True(t, CarrierKindCanadaPost.IsIntegration())
	assert.True(t, CarrierKindAramex.IsIntegration())
}

func TestParseCarrierKinds(t *testing.T) {
	kinds, err := ParseCarrierKinds([]string{"sendcloud", "aramex"})
	require.NoError(t, err)
	assert.Equal(t, []CarrierKind{CarrierKindSendCloud, CarrierKindAramex}, kinds)

	_, err = ParseCarrierKinds([]string{"sendcloud", "fedex"})
	assert.Error(t, err)
}

func TestPolicy_IntegrationEnabled(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.IntegrationEnabled(CarrierKindGeneric))
	assert.False(t, p.IntegrationEnabled(CarrierKindAramex))

	p.Integrations = []CarrierKind{CarrierKindAramex}
	assert.True(t, p.IntegrationEnabled(CarrierKindAramex))
	assert.False(t, p.IntegrationEnabled(CarrierKindCanadaPost))
}

func TestNewCarrier(t *testing.T) {
	c, err := NewCarrier("  Carrier A ", DefaultSystemName, CarrierKindGeneric)
	require.NoError(t, err)
	assert.Equal(t, "Carrier A", c.Name)
	assert.True(t, c.Active)

	c.Deactivate()
	assert.False(t, c.Active)
	assert.Equal(t, 2, c.Version)

	_, err = NewCarrier(" ", DefaultSystemName, CarrierKindGeneric)
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewCarrier("X", "", CarrierKindGeneric)
	assertDomainCode(t, err, "INVALID_SYSTEM_NAME")
}
