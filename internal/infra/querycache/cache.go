package querycache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/TMS-AdminService/pkg/metrics"
)

// FetchFunc загружает значение для ключа при промахе кеша
type FetchFunc func(ctx context.Context) (interface{}, error)

// entry запись кеша с отметками времени
type entry struct {
	value      interface{}
	storedAt   time.Time // нулевое значение = запись инвалидирована
	lastAccess time.Time
}

// Cache кеш запросов к бэкенду с ключами (сущность, вид, параметры)
//
// Семантика:
//   - свежая запись (моложе staleAfter) отдается без обращения к бэкенду;
//   - устаревшая или отсутствующая запись загружается заново, параллельные
//     чтения одного ключа объединяются в один запрос (singleflight);
//   - неудачная загрузка не вытесняет прошлое значение (Peek отдаёт его);
//   - инвалидация помечает записи устаревшими, не удаляя значения;
//   - записи, к которым не обращались дольше gcAfter, вычищаются фоновым циклом
//
// Эффекты записи (Put/Invalidate) применяются под общим мьютексом, поэтому
// чтение, начатое после завершения мутации, гарантированно видит её эффект.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	staleAfter time.Duration
	gcAfter    time.Duration

	group singleflight.Group

	// подменяется в тестах
	now func() time.Time

	m *metrics.Metrics // nil, если метрики выключены

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New создает кеш с указанными окнами устаревания и очистки
// m может быть nil — тогда метрики не записываются
func New(staleAfter, gcAfter time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		staleAfter: staleAfter,
		gcAfter:    gcAfter,
		now:        time.Now,
		m:          m,
		stopCh:     make(chan struct{}),
	}
}

// Read возвращает кешированное значение или загружает его через fetch
// Параллельные чтения одного ключа не порождают дублирующих загрузок
func (c *Cache) Read(ctx context.Context, key Key, fetch FetchFunc) (interface{}, error) {
	ks := key.String()
	now := c.now()

	c.mu.Lock()
	e, ok := c.entries[ks]
	if ok && !e.storedAt.IsZero() && now.Sub(e.storedAt) < c.staleAfter {
		e.lastAccess = now
		c.mu.Unlock()
		c.countCache(key, func(m *metrics.Metrics, entity string) {
			m.CacheHits.WithLabelValues(entity).Inc()
		})
		return e.value, nil
	}
	stale := ok
	c.mu.Unlock()

	if stale {
		c.countCache(key, func(m *metrics.Metrics, entity string) {
			m.CacheStaleRefetch.WithLabelValues(entity).Inc()
		})
	} else {
		c.countCache(key, func(m *metrics.Metrics, entity string) {
			m.CacheMisses.WithLabelValues(entity).Inc()
		})
	}

	value, err, shared := c.group.Do(ks, func() (interface{}, error) {
		v, err := fetch(ctx)
		if err != nil {
			// Прошлое значение остаётся на месте: stale-but-available
			return nil, err
		}
		c.Put(key, v)
		return v, nil
	})
	if shared {
		c.countCache(key, func(m *metrics.Metrics, entity string) {
			m.CacheDedupJoins.WithLabelValues(entity).Inc()
		})
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put сохраняет значение под ключом со свежей отметкой времени
// Используется синхронизатором для прямой перезаписи detail-записи после update
func (c *Cache) Put(key Key, value interface{}) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = &entry{
		value:      value,
		storedAt:   now,
		lastAccess: now,
	}
}

// Peek возвращает последнее известное значение, даже устаревшее
func (c *Cache) Peek(key Key) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Invalidate помечает устаревшими все записи с любым из префиксов
// Следующее чтение такой записи обязано перезагрузить её с бэкенда
// Возвращает количество затронутых записей
func (c *Cache) Invalidate(prefixes ...string) int {
	c.mu.Lock()
	count := 0
	touched := make(map[string]int)
	for ks, e := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(ks, prefix) {
				e.storedAt = time.Time{}
				count++
				touched[entityOf(ks)]++
				break
			}
		}
	}
	c.mu.Unlock()

	if c.m != nil {
		for entity, n := range touched {
			c.m.CacheInvalidations.WithLabelValues(entity).Add(float64(n))
		}
	}
	return count
}

// StartGC запускает фоновый цикл вычищения неиспользуемых записей
func (c *Cache) StartGC(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.gc()
			case <-c.stopCh:
				return
			}
		}
	}()
}

// Stop останавливает фоновый цикл очистки
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Len возвращает текущее количество записей кеша
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) gc() {
	now := c.now()
	c.mu.Lock()
	evicted := make(map[string]int)
	for ks, e := range c.entries {
		if now.Sub(e.lastAccess) >= c.gcAfter {
			delete(c.entries, ks)
			evicted[entityOf(ks)]++
		}
	}
	c.mu.Unlock()

	if c.m != nil {
		for entity, n := range evicted {
			c.m.CacheEvictions.WithLabelValues(entity).Add(float64(n))
		}
	}
}

func (c *Cache) countCache(key Key, record func(m *metrics.Metrics, entity string)) {
	if c.m != nil {
		record(c.m, string(key.Entity))
	}
}

func entityOf(ks string) string {
	if i := strings.IndexByte(ks, '/'); i > 0 {
		return ks[:i]
	}
	return ks
}
