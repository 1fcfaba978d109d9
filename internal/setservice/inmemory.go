package setservice

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fyerfyer/treeset/set"
)

var _ Service = (*InMemoryService)(nil)

// InMemoryService 实现了Service接口的内存存储版本
type InMemoryService struct {
	// 集合名称到集合实例的映射
	sets map[string]*setEntry
	// 保护映射以及所有集合的读写锁
	// TreeSet自身不加锁，所有访问都经过这把锁
	mu sync.RWMutex

	logger zerolog.Logger
}

// setEntry 包含集合及其元数据
type setEntry struct {
	id        uuid.UUID
	s         *set.TreeSet[string]
	order     Order
	createdAt time.Time

	added    uint64
	removed  uint64
	rejected uint64
	cleared  uint64
}

func (e *setEntry) add(item string) bool {
	if e.s.Add(item) {
		e.added++
		return true
	}
	e.rejected++
	return false
}

func (e *setEntry) remove(item string) bool {
	if e.s.Remove(item) {
		e.removed++
		return true
	}
	e.rejected++
	return false
}

func (e *setEntry) stats() Stats {
	return Stats{
		CreatedAt: e.createdAt,
		Order:     e.order,
		Size:      e.s.Size(),
		Height:    e.s.Height(),
		Added:     e.added,
		Removed:   e.removed,
		Rejected:  e.rejected,
		Cleared:   e.cleared,
	}
}

// NewInMemoryService 创建一个新的内存集合服务
func NewInMemoryService(logger zerolog.Logger) *InMemoryService {
	return &InMemoryService{
		sets:   make(map[string]*setEntry),
		logger: logger,
	}
}

// entry 查找集合，调用方需持有锁
func (s *InMemoryService) entry(name string) (*setEntry, error) {
	e, exists := s.sets[name]
	if !exists {
		return nil, errors.Wrapf(ErrSetNotFound, "%q", name)
	}
	return e, nil
}

// CreateSet 创建一个新集合
func (s *InMemoryService) CreateSet(name string, opts SetOptions) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	order := opts.Order
	if order == "" {
		order = OrderNatural
	}
	comparator, err := order.Comparator()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sets[name]; exists {
		return errors.Wrapf(ErrSetExists, "%q", name)
	}

	e := &setEntry{
		id:        uuid.New(),
		s:         set.NewTreeWithComparator(comparator),
		order:     order,
		createdAt: time.Now(),
	}
	s.sets[name] = e

	s.logger.Info().
		Str("set", name).
		Str("id", e.id.String()).
		Str("order", string(order)).
		Msg("set created")
	return nil
}

// GetSet 获取指定集合的副本，修改副本不会影响服务中的集合
func (s *InMemoryService) GetSet(name string) (set.OrderedSet[string], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return nil, err
	}
	return e.s.Clone(), nil
}

// ListSets 按名称顺序列出所有集合
func (s *InMemoryService) ListSets() []SetInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := set.NewTree[string]()
	for name := range s.sets {
		names.Add(name)
	}

	result := make([]SetInfo, 0, names.Size())
	for name := range names.All() {
		e := s.sets[name]
		result = append(result, SetInfo{
			ID:    e.id,
			Name:  name,
			Stats: e.stats(),
		})
	}
	return result
}

// AddItems 向集合添加元素
func (s *InMemoryService) AddItems(name string, items ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(name)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if e.add(item) {
			added++
		}
	}

	s.logger.Debug().Str("set", name).Int("requested", len(items)).Int("added", added).Msg("items added")
	return added, nil
}

// RemoveItems 从集合删除元素
func (s *InMemoryService) RemoveItems(name string, items ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(name)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, item := range items {
		if e.remove(item) {
			removed++
		}
	}

	s.logger.Debug().Str("set", name).Int("requested", len(items)).Int("removed", removed).Msg("items removed")
	return removed, nil
}

// Contains 检查集合是否包含元素
func (s *InMemoryService) Contains(name string, item string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return false, err
	}
	return e.s.Contains(item), nil
}

// First 返回集合的最小元素
func (s *InMemoryService) First(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return "", err
	}

	item, err := e.s.First()
	if err != nil {
		return "", errors.Wrapf(err, "%q", name)
	}
	return item, nil
}

// Last 返回集合的最大元素
func (s *InMemoryService) Last(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return "", err
	}

	item, err := e.s.Last()
	if err != nil {
		return "", errors.Wrapf(err, "%q", name)
	}
	return item, nil
}

// Items 按顺序返回集合中的所有元素
func (s *InMemoryService) Items(name string, reverse bool) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return nil, err
	}

	seq := e.s.All()
	if reverse {
		seq = e.s.Backward()
	}

	items := make([]string, 0, e.s.Size())
	for item := range seq {
		items = append(items, item)
	}
	return items, nil
}

// IsDisjoint 检查集合b中是否没有任何元素存在于集合a
// 两个集合的排序方式不同时，以a的比较器判断是否相同
func (s *InMemoryService) IsDisjoint(a, b string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ea, err := s.entry(a)
	if err != nil {
		return false, err
	}
	eb, err := s.entry(b)
	if err != nil {
		return false, err
	}
	return ea.s.IsDisjoint(eb.s), nil
}

// ClearSet 清空集合
func (s *InMemoryService) ClearSet(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.entry(name)
	if err != nil {
		return err
	}

	size := e.s.Size()
	e.s.Clear()
	e.cleared++

	s.logger.Info().Str("set", name).Int("discarded", size).Msg("set cleared")
	return nil
}

// DeleteSet 删除集合
func (s *InMemoryService) DeleteSet(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.entry(name); err != nil {
		return err
	}
	delete(s.sets, name)

	s.logger.Info().Str("set", name).Msg("set deleted")
	return nil
}

// SetStats 获取集合统计信息
func (s *InMemoryService) SetStats(name string) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return Stats{}, err
	}
	return e.stats(), nil
}

// Snapshot 获取集合的树结构快照
func (s *InMemoryService) Snapshot(name string) (*set.TreeNode[string], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return nil, err
	}
	return e.s.Snapshot(), nil
}

// ExportSet 导出集合的可序列化数据
func (s *InMemoryService) ExportSet(name string) (SetData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.entry(name)
	if err != nil {
		return SetData{}, err
	}

	return SetData{
		ID:        e.id.String(),
		Name:      name,
		Order:     e.order,
		CreatedAt: e.createdAt,
		Items:     e.s.ToSlice(),
	}, nil
}

// Close 删除所有集合
func (s *InMemoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug().Int("sets", len(s.sets)).Msg("service closed")
	s.sets = make(map[string]*setEntry)
	return nil
}
