package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/models"
	"restaurant-orders/internal/repository/cache"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFileRepo keeps one pretty-printed JSON file per write in a single
// directory, named <prefix>_<orderId>_<unix-ms>.json. Lookups go through an
// in-memory ID index that is rebuilt from the directory listing.
type OrderFileRepo struct {
	dir    string
	prefix string

	mu  sync.RWMutex
	idx *cache.FileIndex
	now func() time.Time
}

type Option func(*OrderFileRepo)

func WithClock(now func() time.Time) Option { return func(r *OrderFileRepo) { r.now = now } }
func WithShards(n int) Option {
	return func(r *OrderFileRepo) { r.idx = cache.NewFileIndex(cache.NewShardedCache(cache.WithShards(n))) }
}

func NewOrderFileRepo(dir, prefix string, opts ...Option) (*OrderFileRepo, error) {
	r := &OrderFileRepo{
		dir:    dir,
		prefix: prefix,
		idx:    cache.NewFileIndex(cache.NewShardedCache()),
		now:    time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	if err := r.Rebuild(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *OrderFileRepo) Dir() string { return r.dir }

func (r *OrderFileRepo) fileName(orderID string, ts int64) string {
	return fmt.Sprintf("%s_%s_%d.json", r.prefix, orderID, ts)
}

func (r *OrderFileRepo) parseName(name string) (string, int64, bool) {
	head := r.prefix + "_"
	if !strings.HasPrefix(name, head) || !strings.HasSuffix(name, ".json") {
		return "", 0, false
	}
	core := strings.TrimSuffix(strings.TrimPrefix(name, head), ".json")
	i := strings.LastIndexByte(core, '_')
	if i <= 0 {
		return "", 0, false
	}
	ts, err := strconv.ParseInt(core[i+1:], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return core[:i], ts, true
}

// Rebuild rescans the directory. A missing directory yields an empty index.
func (r *OrderFileRepo) Rebuild() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.idx.Reset()
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read dir %s", r.dir)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ts, ok := r.parseName(e.Name())
		if !ok {
			logrus.WithField("file", filepath.Join(r.dir, e.Name())).Warn("skip unrecognised order file")
			continue
		}
		r.idx.Put(id, cache.FileRef{Name: e.Name(), WrittenAt: ts})
	}
	return nil
}

func (r *OrderFileRepo) Save(o models.Order) error {
	if o.OrderId == "" {
		return errors.New("save order: empty order id")
	}
	body, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode order %s", o.OrderId)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create dir %s", r.dir)
	}

	ts := r.now().UnixMilli()
	if cur, ok := r.idx.Get(o.OrderId); ok && cur.WrittenAt >= ts {
		ts = cur.WrittenAt + 1
	}
	name := r.fileName(o.OrderId, ts)
	if err := os.WriteFile(filepath.Join(r.dir, name), body, 0o644); err != nil {
		return errors.Wrapf(err, "write order %s", o.OrderId)
	}
	r.idx.Put(o.OrderId, cache.FileRef{Name: name, WrittenAt: ts})
	return nil
}

func (r *OrderFileRepo) Get(orderID string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.idx.Get(orderID)
	if !ok {
		return models.Order{}, errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}
	o, err := readOrder(filepath.Join(r.dir, ref.Name))
	if os.IsNotExist(errors.Cause(err)) {
		return models.Order{}, errors.Wrapf(ErrOrderNotFound, "order %s file vanished", orderID)
	}
	return o, err
}

func (r *OrderFileRepo) Delete(orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.idx.Get(orderID)
	if !ok {
		return errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}
	if err := os.Remove(filepath.Join(r.dir, ref.Name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove order %s", orderID)
	}
	r.idx.Delete(orderID)
	return nil
}

// List decodes every JSON file in the directory, duplicates included.
// Files that fail to decode are skipped.
func (r *OrderFileRepo) List() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", r.dir)
	}

	out := make([]models.Order, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(r.dir, e.Name())
		o, err := readOrder(path)
		if err != nil {
			logrus.WithError(err).WithField("file", path).Warn("skip unreadable order file")
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderFileRepo) Len() int {
	return r.idx.Len()
}

func readOrder(path string) (models.Order, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return models.Order{}, errors.Wrap(err, "read order file")
	}
	var o models.Order
	if err := json.Unmarshal(body, &o); err != nil {
		return models.Order{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return o, nil
}
