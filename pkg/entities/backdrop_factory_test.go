package entities

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackdropScene(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultPresentationConfig().Backdrop

	ids, err := NewBackdropScene(em, cfg, rand.New(rand.NewPCG(1, 2)), 1600, 900)
	require.NoError(t, err)
	assert.Equal(t, 4, em.EntityCount())

	cam, ok := ecs.GetComponent[*components.CameraComponent](em, ids.Camera)
	require.True(t, ok)
	assert.InDelta(t, 16.0/9.0, cam.Camera.Aspect, 1e-9)
	assert.Equal(t, 15.0, cam.Camera.Distance)

	cloud, ok := ecs.GetComponent[*components.PointCloudComponent](em, ids.Particles)
	require.True(t, ok)
	assert.Len(t, cloud.Points, 5000)
	mat, _ := ecs.GetComponent[*components.MaterialComponent](em, ids.Particles)
	assert.True(t, mat.Additive)
	assert.Equal(t, uint8(204), mat.RGBA().A)

	wire, ok := ecs.GetComponent[*components.WireframeComponent](em, ids.Polyhedron)
	require.True(t, ok)
	assert.Len(t, wire.Mesh.Vertices, 42)
	assert.True(t, ecs.HasComponent[*components.PulseComponent](em, ids.Polyhedron))
	assert.False(t, ecs.HasComponent[*components.PulseComponent](em, ids.Torus))

	spin, _ := ecs.GetComponent[*components.SpinComponent](em, ids.Particles)
	assert.Equal(t, 0.001, spin.Step.Y)
	assert.Equal(t, 0.0005, spin.Step.X)

	// 所有可见物体都有变换和材质
	assert.Len(t, ecs.GetEntitiesWith2[*components.TransformComponent, *components.MaterialComponent](em), 3)
}

func TestNewBackdropScene_InvalidGeometry(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultPresentationConfig().Backdrop
	cfg.Torus.RadialSegments = 1

	_, err := NewBackdropScene(em, cfg, rand.New(rand.NewPCG(1, 2)), 800, 600)
	require.Error(t, err)
	assert.Equal(t, 0, em.EntityCount())
}

func TestNewBackdropScene_NilArgs(t *testing.T) {
	cfg := config.DefaultPresentationConfig().Backdrop
	_, err := NewBackdropScene(nil, cfg, rand.New(rand.NewPCG(1, 2)), 800, 600)
	assert.Error(t, err)

	_, err = NewBackdropScene(ecs.NewEntityManager(), cfg, nil, 800, 600)
	assert.Error(t, err)
}
