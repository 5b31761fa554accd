package physics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/annel0/voxel-physics/internal/logging"
	"github.com/annel0/voxel-physics/internal/world/block"
)

// defFile описывает файл определений физики блоков
type defFile struct {
	Blocks map[string]map[string]interface{} `yaml:"blocks"`
}

// LoadDefinitions читает YAML-файлы определений физики из каталога dir и
// регистрирует профили для перечисленных блоков. Любая ошибка содержимого
// (неизвестный блок, кривая опция) останавливает загрузку: регистрация
// обязана падать громко, а не маскировать опечатку автора контента.
func LoadDefinitions(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	// Детерминированный порядок загрузки
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext != ".yml" && ext != ".yaml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	log := logging.GetLoggerManager().MustGetLogger("physics")

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := loadDefinitionFile(path); err != nil {
			return fmt.Errorf("определения %s: %w", path, err)
		}
		log.Debug("Загружен файл определений физики: %s", path)
	}
	return nil
}

// loadDefinitionFile загружает один файл определений
func loadDefinitionFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file defFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("разбор YAML: %w", err)
	}
	if len(file.Blocks) == 0 {
		return fmt.Errorf("файл не содержит секции blocks")
	}

	for blockName, opts := range file.Blocks {
		id, ok := block.GetByName(strings.TrimSpace(blockName))
		if !ok {
			return fmt.Errorf("блок %q не зарегистрирован", blockName)
		}
		profile, err := ParseOptions(normalizeOptions(opts))
		if err != nil {
			return fmt.Errorf("блок %q: %w", blockName, err)
		}
		RegisterProfile(id, profile)
	}
	return nil
}

// normalizeOptions приводит вложенные карты yaml.v3 к map[string]interface{}
func normalizeOptions(opts map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(opts))
	for k, v := range opts {
		result[k] = normalizeValue(v)
	}
	return result
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return normalizeOptions(t)
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeValue(val)
		}
		return m
	case []interface{}:
		items := make([]interface{}, len(t))
		for i, item := range t {
			items[i] = normalizeValue(item)
		}
		return items
	default:
		return v
	}
}
