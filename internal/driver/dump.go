package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"volt/internal/netlist"
)

// WriteSnapshot сохраняет msgpack-снимок модуля в <dir>/<name>.msgpack.
// Снимок — побочный эффект для инспекции; последующие стадии его никогда
// не читают. Запись атомарная (временный файл + rename).
func WriteSnapshot(dir, name string, mod *netlist.Module) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}

	payload, err := msgpack.Marshal(mod.Snapshot())
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}

	final := filepath.Join(dir, name+".msgpack")
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		// не оставляем мусор при неудачном rename
		_ = os.Remove(tmp)
		return fmt.Errorf("snapshot rename: %w", err)
	}
	return nil
}
