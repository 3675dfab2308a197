package types

import (
	"github.com/cutroom/timeline-api/internal/database"
	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/internal/services/preferences"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/services/sessions"
	"github.com/cutroom/timeline-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	SceneService      scenes.SceneService
	SessionManager    *sessions.Manager
	PreferenceService preferences.Service
	JobService        jobs.Service
	WorkerPool        *workers.WorkerPool
}
