package ecs

import (
	"reflect"
	"testing"
)

// ========== 测试组件定义 ==========

type benchTween struct {
	Elapsed, Duration float64
}

type benchMote struct {
	X, Y, Radius float64
}

// setupBenchmarkEntities 创建 count 个实体，每个实体带两个组件
// 每帧查询、取组件、推进一次，与背景图层的用法一致
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &benchTween{Duration: 10})
		em.AddComponent(id, &benchMote{X: float64(i), Y: float64(i * 2), Radius: 2})
	}
	return em
}

// ========== 基准测试：GetEntitiesWith（反射 vs 泛型）==========

func BenchmarkGetEntitiesWith_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(
			reflect.TypeOf(&benchTween{}),
			reflect.TypeOf(&benchMote{}),
		)
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*benchTween, *benchMote](em)
	}
}

// ========== 基准测试：整帧更新 ==========

// BenchmarkFrameUpdate_Generic 查询 + 取组件 + 推进补间
func BenchmarkFrameUpdate_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, id := range GetEntitiesWith1[*benchTween](em) {
			tw, _ := GetComponent[*benchTween](em, id)
			tw.Elapsed += 1.0 / 60
		}
	}
}

func BenchmarkGetComponent_NotFound(b *testing.B) {
	em := setupBenchmarkEntities(10)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*benchTween](em, EntityID(9999))
	}
}
