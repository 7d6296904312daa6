package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
)

const (
	keyLatestHeight = "height_latest"
	genesisPrevHash = "0000000000000000000000000000000000000000000000000000000000000000"
)

// ChainLedger - встроенный реестр: цепочка блоков в LevelDB.
// Блок хранится дважды: по номеру (block_<index>) и по хешу (hash_<hash>).
type ChainLedger struct {
	db     *leveldb.DB
	logger *logrus.Logger
	now    func() time.Time

	mu sync.Mutex
}

// OpenChainLedger открывает (или создаёт) базу реестра по пути path
func OpenChainLedger(path string, logger *logrus.Logger) (*ChainLedger, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger db at %s: %w", path, err)
	}
	logger.WithField("path", path).Info("Ledger database opened")
	return &ChainLedger{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (l *ChainLedger) Close() error {
	return l.db.Close()
}

func blockKey(index int) []byte {
	return []byte(fmt.Sprintf("block_%d", index))
}

func hashKey(hash string) []byte {
	return []byte(fmt.Sprintf("hash_%s", hash))
}

// latestHeight возвращает номер последнего блока; false - цепочка пуста
func (l *ChainLedger) latestHeight() (int, bool, error) {
	v, err := l.db.Get([]byte(keyLatestHeight), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	h, err := strconv.Atoi(string(v))
	if err != nil {
		return 0, false, fmt.Errorf("bad %s value %q: %w", keyLatestHeight, v, ErrChainBroken)
	}
	return h, true, nil
}

func (l *ChainLedger) blockAt(index int) (*Block, error) {
	data, err := l.db.Get(blockKey(index), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("block #%d: %w", index, ErrBlockNotFound)
		}
		return nil, err
	}
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("block #%d: %v: %w", index, err, ErrChainBroken)
	}
	return &b, nil
}

// computeHash считает sha256 по заголовку блока без поля Hash
func computeHash(b *Block) (string, error) {
	header := struct {
		Index     int             `json:"index"`
		Tag       string          `json:"tag"`
		Payload   json.RawMessage `json:"payload"`
		PrevHash  string          `json:"prev_hash"`
		Timestamp time.Time       `json:"timestamp"`
	}{b.Index, b.Tag, b.Payload, b.PrevHash, b.Timestamp}

	data, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Submit дописывает блок в цепочку и возвращает его хеш
func (l *ChainLedger) Submit(ctx context.Context, tag string, payload []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
	}
	if strings.TrimSpace(tag) == "" {
		return "", fmt.Errorf("empty tag: %w", ErrLedgerRejected)
	}
	if !json.Valid(payload) {
		return "", fmt.Errorf("payload is not valid json: %w", ErrLedgerRejected)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	block := &Block{
		Tag:       tag,
		Payload:   json.RawMessage(append([]byte(nil), payload...)),
		PrevHash:  genesisPrevHash,
		Timestamp: l.now(),
	}

	height, ok, err := l.latestHeight()
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
	}
	if ok {
		prev, err := l.blockAt(height)
		if err != nil {
			return "", fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
		}
		block.Index = height + 1
		block.PrevHash = prev.Hash
	}

	block.Hash, err = computeHash(block)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrLedgerRejected)
	}
	data, err := json.Marshal(block)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrLedgerRejected)
	}

	batch := new(leveldb.Batch)
	batch.Put(blockKey(block.Index), data)
	batch.Put(hashKey(block.Hash), data)
	batch.Put([]byte(keyLatestHeight), []byte(strconv.Itoa(block.Index)))
	if err := l.db.Write(batch, nil); err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
	}

	l.logger.WithFields(logrus.Fields{
		"ledger": "chain",
		"index":  block.Index,
		"tag":    tag,
		"hash":   block.Hash,
	}).Info("Block appended")
	return block.Hash, nil
}

// Fetch возвращает блок по идентификатору якоря (хешу)
func (l *ChainLedger) Fetch(ctx context.Context, anchorID string) (*Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
	}
	data, err := l.db.Get(hashKey(anchorID), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("anchor %s: %w", anchorID, ErrBlockNotFound)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrLedgerUnavailable)
	}
	var b Block
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("anchor %s: %v: %w", anchorID, err, ErrChainBroken)
	}
	return &b, nil
}

// Height возвращает число блоков в цепочке
func (l *ChainLedger) Height() (int, error) {
	h, ok, err := l.latestHeight()
	if err != nil || !ok {
		return 0, err
	}
	return h + 1, nil
}

// Verify проходит цепочку от первого блока и сверяет хеши и ссылки
func (l *ChainLedger) Verify() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	height, ok, err := l.latestHeight()
	if err != nil || !ok {
		return err
	}

	prevHash := genesisPrevHash
	for i := 0; i <= height; i++ {
		b, err := l.blockAt(i)
		if err != nil {
			return err
		}
		if b.PrevHash != prevHash {
			return fmt.Errorf("block #%d links to %s, want %s: %w", i, b.PrevHash, prevHash, ErrChainBroken)
		}
		want, err := computeHash(b)
		if err != nil {
			return err
		}
		if b.Hash != want {
			return fmt.Errorf("block #%d hash mismatch: %w", i, ErrChainBroken)
		}
		prevHash = b.Hash
	}
	return nil
}
