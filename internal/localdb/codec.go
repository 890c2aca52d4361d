package localdb

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// readState distingue key ausente de key con JSON roto.
type readState int

const (
	stateAbsent readState = iota
	statePresent
	stateCorrupt
)

func (s readState) String() string {
	switch s {
	case statePresent:
		return "ok"
	case stateCorrupt:
		return "corrupt"
	default:
		return "absent"
	}
}

// readCollection lee una colección completa. Un valor corrupto se loguea y se
// devuelve como colección vacía; los errores del kv store se propagan.
func readCollection[T any](ctx context.Context, s *Store, key string) ([]T, readState, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, stateAbsent, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return make([]T, 0), stateAbsent, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("corrupt collection treated as empty", map[string]any{
			"key":   key,
			"error": err.Error(),
			"bytes": len(raw),
		})
		return make([]T, 0), stateCorrupt, nil
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, statePresent, nil
}

func writeCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// mergePatch hace un merge superficial: los campos presentes en el JSON del
// patch reemplazan a los del record.
func mergePatch[T any](rec T, patch any) (T, error) {
	var zero T

	base, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	over, err := json.Marshal(patch)
	if err != nil {
		return zero, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return zero, err
	}
	var changes map[string]json.RawMessage
	if err := json.Unmarshal(over, &changes); err != nil {
		return zero, err
	}
	for k, v := range changes {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// readPointer acepta el id plano o como string JSON ("\"pet_1\"").
func (s *Store) readPointer(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, KeyCurrentPetID)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", KeyCurrentPetID, err)
	}
	if !ok {
		return "", false, nil
	}
	id := strings.TrimSpace(raw)
	if strings.HasPrefix(id, `"`) {
		var unq string
		if err := json.Unmarshal([]byte(id), &unq); err == nil {
			id = strings.TrimSpace(unq)
		}
	}
	if id == "" {
		return "", false, nil
	}
	return id, true, nil
}
