package cache

import "sort"

// FileRef points an order ID at the file holding its latest write.
type FileRef struct {
	Name      string
	WrittenAt int64
}

type FileIndex struct {
	cch KV
}

func NewFileIndex(cch KV) *FileIndex {
	return &FileIndex{cch: cch}
}

// Put keeps the newest ref when an ID was written more than once.
func (f *FileIndex) Put(orderID string, ref FileRef) {
	if cur, ok := f.Get(orderID); ok && cur.WrittenAt > ref.WrittenAt {
		return
	}
	f.cch.Put(orderID, ref)
}

func (f *FileIndex) Get(orderID string) (FileRef, bool) {
	v, ok := f.cch.Get(orderID)
	if !ok {
		return FileRef{}, false
	}
	ref, ok := v.(FileRef)
	return ref, ok
}

func (f *FileIndex) Delete(orderID string) {
	f.cch.Delete(orderID)
}

func (f *FileIndex) IDs() []string {
	snap := f.cch.Snapshot()
	ids := make([]string, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *FileIndex) Len() int {
	return f.cch.Len()
}

func (f *FileIndex) Reset() {
	f.cch.Reset()
}
