package api

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"autoloader/internal/generate"
	"autoloader/internal/metadata"
	"autoloader/internal/smartobject"
)

// Loader читает реестр моделей из каталога.
type Loader func(dir string) (*metadata.Registry, error)

// ErrBlocked — у новых метаданных есть блокирующие замечания линтера.
var ErrBlocked = errors.New("metadata has blocking issues")

// Storage держит текущий реестр и результат последней сборки.
type Storage struct {
	mu        sync.RWMutex
	Models    *metadata.Registry
	Build     *generate.Result
	ModelsDir string

	svc  *smartobject.Service
	load Loader
	log  *zap.Logger
}

// NewStorage собирает артефакты для reg и готов отдавать их.
func NewStorage(reg *metadata.Registry, modelsDir string, svc *smartobject.Service, load Loader, log *zap.Logger) *Storage {
	if log == nil {
		log = zap.NewNop()
	}
	if load == nil {
		load = metadata.LoadDir
	}
	s := &Storage{
		Models:    reg,
		ModelsDir: modelsDir,
		svc:       svc,
		load:      load,
		log:       log,
	}
	s.Build = generate.Run(reg, svc.WithModels(reg), log)
	return s
}

// Snapshot — согласованная пара реестр/сборка.
func (s *Storage) Snapshot() (*metadata.Registry, *generate.Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Models, s.Build
}

// Reload перечитывает модели, прогоняет линтер и при отсутствии ошибок
// атомарно подменяет реестр и сборку. При ErrBlocked возвращаются замечания.
func (s *Storage) Reload(dir string) (*generate.Result, []metadata.Issue, error) {
	if dir == "" {
		s.mu.RLock()
		dir = s.ModelsDir
		s.mu.RUnlock()
	}

	reg, err := s.load(dir)
	if err != nil {
		return nil, nil, err
	}
	if blocking := metadata.Blocking(s.SchemaLint(reg)); len(blocking) > 0 {
		return nil, blocking, ErrBlocked
	}

	res := generate.Run(reg, s.svc.WithModels(reg), s.log)

	s.mu.Lock()
	s.Models = reg
	s.Build = res
	s.ModelsDir = dir
	s.mu.Unlock()

	s.log.Info("models reloaded", zap.String("dir", dir), zap.Int("models", reg.Len()), zap.String("build", res.ID))
	return res, nil, nil
}
