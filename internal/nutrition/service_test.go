package nutrition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nourishcoach/internal/kvstore"
)

func TestTargetsPersistsLastProfile(t *testing.T) {
	store := kvstore.NewMemory()
	svc := NewService(store)
	ctx := context.Background()

	p := referenceProfile()
	p.VegPreference = true

	_, err := svc.Targets(ctx, p)
	require.NoError(t, err)

	// Round-trip: reloading yields a profile with all fields equal to the
	// original, modulo defaulting.
	got, err := svc.LastProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestTargetsRoundTripWithDefaulting(t *testing.T) {
	store := kvstore.NewMemory()
	svc := NewService(store)
	ctx := context.Background()

	// Partial inputs: missing fields come back as their defaults.
	_, err := svc.Targets(ctx, BiometricProfile{WeightKg: 82})
	require.NoError(t, err)

	got, err := svc.LastProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 82.0, got.WeightKg)
	assert.Equal(t, 24, got.Age)
	assert.Equal(t, ActivityModerate, got.Activity)
}

func TestLastProfileWhenEmpty(t *testing.T) {
	svc := NewService(kvstore.NewMemory())

	got, err := svc.LastProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BiometricProfile{}.Normalize(), got)
}

func TestLastProfileCorruptValueDegrades(t *testing.T) {
	store := kvstore.NewMemory()
	require.NoError(t, store.Put(context.Background(), lastProfileKey, []byte("not json")))

	svc := NewService(store)
	got, err := svc.LastProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BiometricProfile{}.Normalize(), got)
}

func TestServiceBMI(t *testing.T) {
	svc := NewService(kvstore.NewMemory())

	result := svc.BMI(context.Background(), 170, 70, TableWestern)
	require.NotNil(t, result)
	assert.Equal(t, "Normal", result.Band)

	assert.Nil(t, svc.BMI(context.Background(), 0, 0, TableWestern))
}
