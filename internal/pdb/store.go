package pdb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/go-logr/logr"
)

// Store persists pattern databases in a BadgerDB directory, the same
// KV-store the teacher uses for preferences and stats (internal/storage),
// but here holding potentially millions of small pattern-key -> cost
// entries instead of a couple of JSON blobs, so entries are written
// through a WriteBatch and values are compressed with ZSTD rather than
// stored as one JSON document per key.
type Store struct {
	db *badger.DB
}

// OpenStore opens (creating if necessary) a BadgerDB-backed store at dir.
// Unlike the teacher's Storage, which disables Badger logging entirely,
// log routes Badger's own diagnostics (compaction, value-log GC) through
// the caller's logr.Logger.
func OpenStore(dir string, log logr.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(newBadgerLogger(log)).
		WithCompression(options.ZSTD)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("pdb: open store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// metadata is the JSON document stored once per (size, signature) pair,
// recording the partition a stored set of databases was built against so
// Load can hand back a Set with the right TileGroups attached to the raw
// Database maps.
type metadata struct {
	Size      int     `json:"size"`
	Partition [][]int `json:"partition"`
}

func signature(partition Partition) string {
	b, _ := json.Marshal(partitionTiles(partition))
	return fmt.Sprintf("%x", b)
}

func partitionTiles(partition Partition) [][]int {
	tiles := make([][]int, len(partition))
	for i, g := range partition {
		tiles[i] = g.Tiles
	}
	return tiles
}

func metaKey(size int, sig string) []byte {
	return []byte(fmt.Sprintf("meta:%d:%s", size, sig))
}

func entryPrefix(size int, sig string, group int) []byte {
	return []byte(fmt.Sprintf("pdb:%d:%s:%d:", size, sig, group))
}

func entryKey(size int, sig string, group int, pattern uint64) []byte {
	key := entryPrefix(size, sig, group)
	suffix := make([]byte, 8)
	binary.BigEndian.PutUint64(suffix, pattern)
	return append(key, suffix...)
}

// Save persists every group's database under size and partition's
// signature, plus one metadata record describing the partition itself.
func (s *Store) Save(size int, partition Partition, databases []Database) error {
	if len(partition) != len(databases) {
		return fmt.Errorf("pdb: save: partition has %d groups, got %d databases", len(partition), len(databases))
	}
	sig := signature(partition)

	meta := metadata{Size: size, Partition: partitionTiles(partition)}
	metaBytes, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("pdb: marshal metadata: %w", err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey(size, sig), metaBytes)
	}); err != nil {
		return fmt.Errorf("pdb: write metadata: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for gi, db := range databases {
		for pattern, cost := range db {
			if err := wb.Set(entryKey(size, sig, gi, pattern), []byte{cost}); err != nil {
				return fmt.Errorf("pdb: write group %d entry: %w", gi, err)
			}
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("pdb: flush write batch: %w", err)
	}
	return nil
}

// Load reads back the databases previously saved for size and partition.
// It returns ErrMissing if no metadata record exists for the pair — the
// caller (the solver, per spec.md §7) should surface this as PdbMissing
// rather than silently building an empty Set.
func (s *Store) Load(size int, partition Partition) (*Set, error) {
	sig := signature(partition)

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(metaKey(size, sig))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, fmt.Errorf("pdb: read metadata: %w", err)
	}

	databases := make([]Database, len(partition))
	for gi := range partition {
		db := make(Database)
		prefix := entryPrefix(size, sig, gi)

		err := s.db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()

			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				key := item.Key()
				pattern := binary.BigEndian.Uint64(key[len(key)-8:])

				if err := item.Value(func(val []byte) error {
					if len(val) != 1 {
						return fmt.Errorf("pdb: corrupt entry for group %d pattern %d", gi, pattern)
					}
					db[pattern] = val[0]
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("pdb: read group %d: %w", gi, err)
		}
		databases[gi] = db
	}

	return NewSet(size, partition, databases), nil
}
