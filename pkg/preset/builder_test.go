package preset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigma-sim/enigma-go/pkg/enigma"
	"github.com/enigma-sim/enigma-go/pkg/preset"
	"github.com/enigma-sim/enigma-go/pkg/trace"
)

type captureTracer struct {
	events []trace.Event
}

func (c *captureTracer) Trace(e trace.Event) {
	c.events = append(c.events, e)
}

func TestBuilderFull(t *testing.T) {
	machine, err := preset.NewBuilder(preset.M3).
		Rotors("III", "II", "I").
		Reflector("B").
		Plugs("AB", "CD").
		Positions("KDO").
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"III", "II", "I"}, machine.RotorModels())
	assert.Equal(t, "B", machine.ReflectorModel())
	assert.Equal(t, []string{"AB", "CD"}, machine.PlugboardPairs())
	assert.Equal(t, "KDO", machine.RotorPositions())
}

func TestBuilderDefaultComponents(t *testing.T) {
	t.Run("M3ReflectorDefaults", func(t *testing.T) {
		machine, err := preset.NewBuilder(preset.M3).Rotors("I", "II", "III").Build()
		require.NoError(t, err)
		assert.Equal(t, "A", machine.ReflectorModel())
		assert.Empty(t, machine.EntryWheelModel())
	})

	t.Run("RocketGetsBothWheels", func(t *testing.T) {
		machine, err := preset.NewBuilder(preset.Rocket).Rotors("I", "II", "III").Build()
		require.NoError(t, err)
		assert.Equal(t, "UKW", machine.ReflectorModel())
		assert.Equal(t, "ETW", machine.EntryWheelModel())

		_, err = machine.Encode("A", false)
		assert.NoError(t, err)
	})

	t.Run("CommercialGetsNeither", func(t *testing.T) {
		machine, err := preset.NewBuilder(preset.Commercial).Rotors("IC", "IIC", "IIIC").Build()
		require.NoError(t, err)
		assert.Empty(t, machine.ReflectorModel())
		assert.Empty(t, machine.EntryWheelModel())
	})
}

func TestBuilderErrors(t *testing.T) {
	t.Run("UnknownModel", func(t *testing.T) {
		_, err := preset.NewBuilder("M5").Build()
		assert.Error(t, err)
	})

	t.Run("UnknownRotor", func(t *testing.T) {
		_, err := preset.NewBuilder(preset.M3).Rotors("I", "IX").Build()
		assert.ErrorIs(t, err, enigma.ErrUnknownRotor)
	})

	t.Run("TooManyRotors", func(t *testing.T) {
		_, err := preset.NewBuilder(preset.M3).Rotors("I", "II", "III", "I").Build()
		assert.ErrorIs(t, err, enigma.ErrTooManyRotors)
	})

	t.Run("BadPositions", func(t *testing.T) {
		_, err := preset.NewBuilder(preset.M3).Rotors("I", "II", "III").Positions("AB").Build()
		assert.ErrorIs(t, err, enigma.ErrInvalidPosition)
	})

	t.Run("UnknownReflector", func(t *testing.T) {
		_, err := preset.NewBuilder(preset.M3).Rotors("I").Reflector("D").Build()
		assert.ErrorIs(t, err, enigma.ErrUnknownReflector)
	})

	t.Run("BadPlug", func(t *testing.T) {
		_, err := preset.NewBuilder(preset.M3).Rotors("I").Plugs("AAA").Build()
		assert.ErrorIs(t, err, enigma.ErrInvalidPlug)
	})
}

func TestBuilderTracer(t *testing.T) {
	tracer := &captureTracer{}
	machine, err := preset.NewBuilder(preset.M3).
		Rotors("I", "II", "III").
		Reflector("B").
		Tracer(tracer).
		Build()
	require.NoError(t, err)

	// Build itself emits the configuration events.
	require.NotEmpty(t, tracer.events)
	assert.Equal(t, trace.KindConfig, tracer.events[0].Kind)
	assert.Equal(t, "setRotors", tracer.events[0].Config.Op)

	before := len(tracer.events)
	_, err = machine.Encode("HI", false)
	require.NoError(t, err)
	assert.Len(t, tracer.events, before+2)
	assert.Equal(t, trace.KindKeypress, tracer.events[before].Kind)
	assert.Equal(t, "M3", tracer.events[before].Machine)
}
