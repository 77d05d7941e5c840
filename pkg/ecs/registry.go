package ecs

import (
	"fmt"
	"log"
	"reflect"
	"slices"
)

// Registry 管理实体的创建与销毁、组件池以及所有系统
//
// 结构性修改（新实体、销毁、重新匹配）都先进入待处理队列，
// 只在 Update 中统一生效，避免系统遍历实体列表时列表被修改。
//
// Registry 不是并发安全的，应只在游戏主循环所在的 goroutine 中使用。
type Registry struct {
	numEntities int

	// 组件池：切片下标 = 组件 ID，池下标 = 实体 ID
	componentPools []componentPool

	// 实体组件签名：下标 = 实体 ID
	entityComponentSignatures []Signature
	alive                     []bool

	// 已注册的系统，按系统的动态类型索引；systemOrder 保留注册顺序
	systems     map[reflect.Type]SystemInterface
	systemOrder []reflect.Type

	// 等待下一次 Update 处理的实体
	entitiesToBeAdded  []Entity
	pendingAdd         map[int]struct{}
	entitiesToBeKilled []Entity
	pendingKill        map[int]struct{}
}

// NewRegistry 创建一个空的注册表
func NewRegistry() *Registry {
	log.Printf("[Registry] Registry created")
	return &Registry{
		systems:     make(map[reflect.Type]SystemInterface),
		pendingAdd:  make(map[int]struct{}),
		pendingKill: make(map[int]struct{}),
	}
}

// NumEntities 返回已创建的实体数量（包含已销毁的，ID 不复用）
func (r *Registry) NumEntities() int {
	return r.numEntities
}

// CreateEntity 分配下一个实体 ID 并返回实体句柄
// 实体在下一次 Update 时才会被加入匹配的系统
func (r *Registry) CreateEntity() Entity {
	entityID := r.numEntities
	r.numEntities++

	entity := Entity{id: entityID, registry: r}

	if entityID >= len(r.entityComponentSignatures) {
		r.entityComponentSignatures = append(r.entityComponentSignatures, make([]Signature, entityID+1-len(r.entityComponentSignatures))...)
		r.alive = append(r.alive, make([]bool, entityID+1-len(r.alive))...)
	}
	r.entityComponentSignatures[entityID] = 0
	r.alive[entityID] = true

	r.enqueueAdd(entity)

	log.Printf("[Registry] Entity created with ID = %d", entityID)
	return entity
}

// KillEntity 标记实体待销毁
// 实体在下一次 Update 之前依然存活，组件仍可读取
func (r *Registry) KillEntity(e Entity) error {
	if !r.IsAlive(e) {
		return fmt.Errorf("kill %s: %w", e, ErrEntityNotAlive)
	}
	if _, queued := r.pendingKill[e.id]; queued {
		return nil
	}
	r.pendingKill[e.id] = struct{}{}
	r.entitiesToBeKilled = append(r.entitiesToBeKilled, e)
	log.Printf("[Registry] Entity ID = %d marked for destruction", e.id)
	return nil
}

// Refresh 让实体在下一次 Update 时与所有系统重新匹配
// 在实体同步之后增删组件，需要调用 Refresh 才会影响系统成员关系
func (r *Registry) Refresh(e Entity) error {
	if !r.IsAlive(e) {
		return fmt.Errorf("refresh %s: %w", e, ErrEntityNotAlive)
	}
	r.enqueueAdd(e)
	return nil
}

// IsAlive 判断实体是否属于该注册表且未被销毁
func (r *Registry) IsAlive(e Entity) bool {
	if e.registry != r || e.id < 0 || e.id >= len(r.alive) {
		return false
	}
	return r.alive[e.id]
}

// EntitySignature 返回实体当前的组件签名
func (r *Registry) EntitySignature(e Entity) Signature {
	if !r.IsAlive(e) {
		return 0
	}
	return r.entityComponentSignatures[e.id]
}

// Entities 按 ID 顺序返回所有存活的实体
func (r *Registry) Entities() []Entity {
	result := make([]Entity, 0, len(r.alive))
	for id, alive := range r.alive {
		if alive {
			result = append(result, Entity{id: id, registry: r})
		}
	}
	return result
}

// Update 处理等待加入和等待销毁的实体
//
// 待加入的实体按 ID 顺序与每个系统匹配：签名满足则加入，不再满足则移出。
// 之后处理待销毁的实体：从所有系统中移出，并清空签名。
func (r *Registry) Update() {
	added := r.entitiesToBeAdded
	r.entitiesToBeAdded = nil
	clear(r.pendingAdd)
	slices.SortFunc(added, func(a, b Entity) int { return a.id - b.id })
	for _, entity := range added {
		if r.IsAlive(entity) {
			r.AddEntityToSystems(entity)
		}
	}

	killed := r.entitiesToBeKilled
	r.entitiesToBeKilled = nil
	clear(r.pendingKill)
	for _, entity := range killed {
		if !r.IsAlive(entity) {
			continue
		}
		r.RemoveEntityFromSystems(entity)
		r.entityComponentSignatures[entity.id] = 0
		r.alive[entity.id] = false
		log.Printf("[Registry] Entity ID = %d destroyed", entity.id)
	}
}

// AddEntityToSystems 根据实体签名把实体加入感兴趣的系统
// 已不再匹配的系统会移出该实体，已在列表中的不会重复加入
func (r *Registry) AddEntityToSystems(e Entity) {
	entitySignature := r.EntitySignature(e)

	for _, key := range r.systemOrder {
		system := r.systems[key].Base()
		isInterested := entitySignature.Matches(system.GetComponentSignature())

		switch {
		case isInterested && !system.HasEntity(e):
			system.AddEntityToSystem(e)
		case !isInterested && system.HasEntity(e):
			system.RemoveEntityFromSystem(e)
		}
	}
}

// RemoveEntityFromSystems 把实体从所有系统中移出
func (r *Registry) RemoveEntityFromSystems(e Entity) {
	for _, key := range r.systemOrder {
		r.systems[key].Base().RemoveEntityFromSystem(e)
	}
}

// Systems 按注册顺序返回所有系统
func (r *Registry) Systems() []SystemInterface {
	result := make([]SystemInterface, 0, len(r.systemOrder))
	for _, key := range r.systemOrder {
		result = append(result, r.systems[key])
	}
	return result
}

// Clear 在会话结束时释放所有组件池和系统
//
// 所有实体被标记为已销毁，待处理队列被清空，系统的实体列表被清空并解除注册。
// 实体 ID 不会复用：之后创建的实体从原来的计数继续编号。
func (r *Registry) Clear() {
	for _, p := range r.componentPools {
		if p != nil {
			p.Clear()
		}
	}
	r.componentPools = nil

	for _, key := range r.systemOrder {
		r.systems[key].Base().reset()
	}
	clear(r.systems)
	r.systemOrder = nil

	clear(r.entityComponentSignatures)
	clear(r.alive)
	r.entitiesToBeAdded = nil
	clear(r.pendingAdd)
	r.entitiesToBeKilled = nil
	clear(r.pendingKill)

	log.Printf("[Registry] Registry cleared")
}

func (r *Registry) enqueueAdd(e Entity) {
	if _, queued := r.pendingAdd[e.id]; queued {
		return
	}
	r.pendingAdd[e.id] = struct{}{}
	r.entitiesToBeAdded = append(r.entitiesToBeAdded, e)
}

// pool 返回组件 ID 对应的池，没有时返回 nil
func (r *Registry) pool(id ComponentID) componentPool {
	if int(id) >= len(r.componentPools) {
		return nil
	}
	return r.componentPools[id]
}

// ========== 组件管理 ==========

// AddComponent 为实体添加组件 T
//
// 组件池按需创建，实体 ID 超出池容量时扩容。
// 只修改实体签名，不会立即重新匹配系统（见 Refresh）。
func AddComponent[T any](e Entity, component T) error {
	r := e.registry
	if r == nil {
		return ErrNoRegistry
	}
	if !r.IsAlive(e) {
		return fmt.Errorf("add %s to %s: %w", ComponentName[T](), e, ErrEntityNotAlive)
	}

	componentID, err := ComponentIDOf[T]()
	if err != nil {
		return err
	}

	if int(componentID) >= len(r.componentPools) {
		r.componentPools = append(r.componentPools, make([]componentPool, int(componentID)+1-len(r.componentPools))...)
	}
	if r.componentPools[componentID] == nil {
		r.componentPools[componentID] = NewPool[T](DefaultPoolSize)
	}

	componentPool, ok := r.componentPools[componentID].(*Pool[T])
	if !ok {
		return fmt.Errorf("pool for component ID %d holds %T", componentID, r.componentPools[componentID])
	}

	if e.id >= componentPool.Len() {
		componentPool.Resize(max(r.numEntities, componentPool.Len()*2))
	}

	if err := componentPool.Set(e.id, component); err != nil {
		return err
	}

	r.entityComponentSignatures[e.id] = r.entityComponentSignatures[e.id].Set(componentID)

	log.Printf("[Registry] Component ID = %d (%s) was added to entity ID %d", componentID, ComponentName[T](), e.id)
	return nil
}

// RemoveComponent 从实体签名中清除组件 T
// 池中的数据保持原样，但签名不再声明它，因此对外不可见。
//
// 实体会被放回待加入队列：下一次 Update 时不再匹配的系统会移出该实体。
// 在此之前实体仍在原来的系统中，同一帧内访问该组件会返回 ErrComponentNotFound。
func RemoveComponent[T any](e Entity) error {
	r := e.registry
	if r == nil {
		return ErrNoRegistry
	}
	if !r.IsAlive(e) {
		return fmt.Errorf("remove %s from %s: %w", ComponentName[T](), e, ErrEntityNotAlive)
	}

	componentID, err := ComponentIDOf[T]()
	if err != nil {
		return err
	}
	r.entityComponentSignatures[e.id] = r.entityComponentSignatures[e.id].Clear(componentID)
	r.enqueueAdd(e)

	log.Printf("[Registry] Component ID = %d (%s) was removed from entity ID %d", componentID, ComponentName[T](), e.id)
	return nil
}

// HasComponent 检查实体是否拥有组件 T
func HasComponent[T any](e Entity) bool {
	r := e.registry
	if r == nil {
		return false
	}
	componentID, err := ComponentIDOf[T]()
	if err != nil {
		return false
	}
	return r.EntitySignature(e).Test(componentID)
}

// GetComponent 返回实体组件 T 的指针，修改会直接作用在组件池中
// 实体没有该组件时返回 ErrComponentNotFound
func GetComponent[T any](e Entity) (*T, error) {
	r := e.registry
	if r == nil {
		return nil, ErrNoRegistry
	}
	if !r.IsAlive(e) {
		return nil, fmt.Errorf("get %s of %s: %w", ComponentName[T](), e, ErrEntityNotAlive)
	}

	componentID, err := ComponentIDOf[T]()
	if err != nil {
		return nil, err
	}
	if !r.entityComponentSignatures[e.id].Test(componentID) {
		return nil, fmt.Errorf("get %s of %s: %w", ComponentName[T](), e, ErrComponentNotFound)
	}

	componentPool, ok := r.pool(componentID).(*Pool[T])
	if !ok {
		return nil, fmt.Errorf("get %s of %s: %w", ComponentName[T](), e, ErrComponentNotFound)
	}
	return componentPool.Get(e.id)
}

// GetComponentUnchecked 是 GetComponent 的快速路径
//
// 不检查实体是否存活、签名是否包含该组件，只应在系统遍历自身实体列表时使用。
// 组件从未添加过时该调用会 panic；组件被移除后返回的是池中残留的旧数据。
func GetComponentUnchecked[T any](e Entity) *T {
	componentID, err := ComponentIDOf[T]()
	if err != nil {
		panic(err)
	}
	componentPool := e.registry.componentPools[componentID].(*Pool[T])
	return &componentPool.data[e.id]
}

// ========== 系统管理 ==========

// systemKeyOf 返回类型参数 S 对应的系统键
func systemKeyOf[S SystemInterface]() reflect.Type {
	return reflect.TypeFor[S]()
}

// AddSystem 注册系统 S
//
// 系统按其动态类型索引：通过 SystemInterface 变量注册的系统与直接传入具体类型等价。
// 同一类型的系统只保留一个，后注册的会替换先注册的。
// 系统注册后其签名固定；已存在的实体会在下一次 Update 时与新系统匹配。
// system 为 nil 接口时返回 ErrNilSystem。
func AddSystem[S SystemInterface](r *Registry, system S) error {
	key := reflect.TypeOf(system)
	if key == nil {
		return ErrNilSystem
	}

	if old, exists := r.systems[key]; exists {
		log.Printf("[Registry] Warning: system %T already registered, replacing it", system)
		if base := old.Base(); base != system.Base() {
			base.reset()
		}
	} else {
		r.systemOrder = append(r.systemOrder, key)
	}

	base := system.Base()
	base.sealed = true
	r.systems[key] = system

	for id, alive := range r.alive {
		if alive {
			r.enqueueAdd(Entity{id: id, registry: r})
		}
	}

	log.Printf("[Registry] System %T added, signature = %s", system, base.GetComponentSignature())
	return nil
}

// RemoveSystem 移除系统 S，返回是否存在
//
// 被移除的系统清空自己的实体列表并解除封闭，可以再次注册。
// 不影响其他系统，也不修改任何实体的签名。
func RemoveSystem[S SystemInterface](r *Registry) bool {
	key := systemKeyOf[S]()
	system, exists := r.systems[key]
	if !exists {
		return false
	}

	delete(r.systems, key)
	if i := slices.Index(r.systemOrder, key); i >= 0 {
		r.systemOrder = slices.Delete(r.systemOrder, i, i+1)
	}
	system.Base().reset()

	log.Printf("[Registry] System %T removed", system)
	return true
}

// HasSystem 检查系统 S 是否已注册
func HasSystem[S SystemInterface](r *Registry) bool {
	_, exists := r.systems[systemKeyOf[S]()]
	return exists
}

// GetSystem 返回已注册的系统 S，不存在时返回 ErrSystemNotFound
// S 是接口类型时永远找不到：系统只按具体类型索引
func GetSystem[S SystemInterface](r *Registry) (S, error) {
	system, exists := r.systems[systemKeyOf[S]()]
	if !exists {
		var zero S
		return zero, fmt.Errorf("get system %s: %w", systemKeyOf[S](), ErrSystemNotFound)
	}
	return system.(S), nil
}
