package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testRotation struct {
	X, Y float64
}

type testSpin struct {
	DX, DY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID 从 1 开始且唯一
	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, 2, em.EntityCount())
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	assert.False(t, HasComponent[*testRotation](em, id))

	AddComponent(em, id, &testRotation{X: 1, Y: 2})
	require.True(t, HasComponent[*testRotation](em, id))

	rot, ok := GetComponent[*testRotation](em, id)
	require.True(t, ok)
	assert.Equal(t, 2.0, rot.Y)

	// 组件以指针保存，修改会反映到存储中
	rot.X = 10
	again, _ := GetComponent[*testRotation](em, id)
	assert.Equal(t, 10.0, again.X)

	_, ok = GetComponent[*testSpin](em, id)
	assert.False(t, ok)
}

func TestGetEntitiesWithCreationOrder(t *testing.T) {
	em := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testRotation{})
		if i%2 == 0 {
			AddComponent(em, id, &testSpin{})
		}
		ids = append(ids, id)
	}

	assert.Equal(t, ids, GetEntitiesWith1[*testRotation](em))

	both := GetEntitiesWith2[*testRotation, *testSpin](em)
	require.Len(t, both, 25)
	assert.IsIncreasing(t, both)
}

func TestAddComponentUnknownEntityIgnored(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(99), &testRotation{})

	assert.Zero(t, em.EntityCount())
	assert.False(t, em.HasComponent(EntityID(99), reflect.TypeOf(&testRotation{})))
}

func TestAddComponentReplacesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testRotation{X: 1})
	AddComponent(em, id, &testRotation{X: 2})

	rot, ok := GetComponent[*testRotation](em, id)
	require.True(t, ok)
	assert.Equal(t, 2.0, rot.X)
}

func TestSealedEntityManager(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.Seal()
	require.True(t, em.Sealed())

	assert.Panics(t, func() { em.CreateEntity() })

	// 组件仍然可以修改
	AddComponent(em, id, &testSpin{DX: 1})
	spin, ok := GetComponent[*testSpin](em, id)
	require.True(t, ok)
	assert.Equal(t, 1.0, spin.DX)
}

func TestClearUnseals(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.Seal()

	em.Clear()
	assert.False(t, em.Sealed())
	assert.Zero(t, em.EntityCount())
	assert.Empty(t, GetEntitiesWith1[*testRotation](em))

	var id EntityID
	assert.NotPanics(t, func() { id = em.CreateEntity() })
	assert.Equal(t, EntityID(2), id, "IDs are not reused after Clear")
}
