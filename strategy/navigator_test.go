package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStrategy struct {
	err error
}

func (f failingStrategy) BuildRoute(origin, destination string) (string, error) {
	return "", f.err
}

func TestNewNavigatorNilStrategy(t *testing.T) {
	nav, err := NewNavigator(nil)
	assert.Nil(t, nav)
	assert.ErrorIs(t, err, ErrNilStrategy)
}

func TestSetStrategyNil(t *testing.T) {
	nav, err := NewNavigator(RoadStrategy{})
	require.NoError(t, err)

	assert.ErrorIs(t, nav.SetStrategy(nil), ErrNilStrategy)

	// 替换失败后旧策略还在
	route, err := nav.GetDirections("Home", "Office")
	require.NoError(t, err)
	assert.Contains(t, route, "Road")
}

func TestSwitchStrategyChangesResult(t *testing.T) {
	nav, err := NewNavigator(RoadStrategy{})
	require.NoError(t, err)

	route, err := nav.GetDirections("Home", "Office")
	require.NoError(t, err)
	assert.Contains(t, route, "Road")
	assert.Contains(t, route, "Home")
	assert.Contains(t, route, "Office")

	require.NoError(t, nav.SetStrategy(WalkStrategy{}))
	route, err = nav.GetDirections("Home", "Office")
	require.NoError(t, err)
	assert.Contains(t, route, "Walk")
	assert.NotContains(t, route, "Road")
}

func TestStrategyErrorPropagates(t *testing.T) {
	boom := errors.New("no route")
	nav, err := NewNavigator(failingStrategy{err: boom})
	require.NoError(t, err)

	_, err = nav.GetDirections("Home", "Office")
	assert.ErrorIs(t, err, boom)
}

func TestBikeStrategyDefaultSpeed(t *testing.T) {
	route, err := BikeStrategy{}.BuildRoute("Home", "Office")
	require.NoError(t, err)
	assert.Contains(t, route, "15 km/h")

	route, err = BikeStrategy{SpeedKmh: 20}.BuildRoute("Home", "Office")
	require.NoError(t, err)
	assert.Contains(t, route, "20 km/h")
}
