package label

import "sync"

// Memory — каталог меток в памяти: для тестов и запуска без каталога расширений.
type Memory struct {
	Layout Layout

	mu     sync.RWMutex
	labels map[string]map[string]string // "<ext>/<file>" -> key -> text
}

func NewMemory(layout Layout) *Memory {
	return &Memory{Layout: layout, labels: map[string]map[string]string{}}
}

func (m *Memory) Ensure(key, extension, field, table string) Result {
	file := extension + "/" + m.Layout.File(table)

	m.mu.Lock()
	defer m.mu.Unlock()
	units, ok := m.labels[file]
	if !ok {
		units = map[string]string{}
		m.labels[file] = units
	}
	if _, exists := units[key]; exists {
		return Result{Status: StatusExisting}
	}
	units[key] = DefaultText(field, table)
	return Result{Status: StatusRegistered}
}

func (m *Memory) Resolve(key, extension, table string) string {
	if _, ok := m.Text(key, extension, table); ok {
		return m.Layout.Reference(key, extension, table)
	}
	return m.Layout.HelpMessage(key, extension, table)
}

// Text — текст метки, если она определена.
func (m *Memory) Text(key, extension, table string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.labels[extension+"/"+m.Layout.File(table)][key]
	return text, ok
}
