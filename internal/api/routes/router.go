package routes

import (
	"net/http"

	"github.com/simonindia/office-assistant/internal/api/handlers"
	"github.com/simonindia/office-assistant/internal/api/middleware"
	"github.com/simonindia/office-assistant/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	priorityHandler  *handlers.PriorityHandler
	projectHandler   *handlers.ProjectHandler
	meetingHandler   *handlers.MeetingHandler
	protocolHandler  *handlers.ProtocolHandler
	timeSplitHandler *handlers.TimeSplitHandler
	briefHandler     *handlers.DailyBriefHandler
	memoryHandler    *handlers.LearningMemoryHandler
	outlookHandler   *handlers.OutlookHandler
	briefingHandler  *handlers.BriefingHandler
	snapshotHandler  *handlers.SnapshotHandler

	staticDir      string
	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	priorityHandler *handlers.PriorityHandler,
	projectHandler *handlers.ProjectHandler,
	meetingHandler *handlers.MeetingHandler,
	protocolHandler *handlers.ProtocolHandler,
	timeSplitHandler *handlers.TimeSplitHandler,
	briefHandler *handlers.DailyBriefHandler,
	memoryHandler *handlers.LearningMemoryHandler,
	outlookHandler *handlers.OutlookHandler,
	briefingHandler *handlers.BriefingHandler,
	snapshotHandler *handlers.SnapshotHandler,
	staticDir string,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		priorityHandler:  priorityHandler,
		projectHandler:   projectHandler,
		meetingHandler:   meetingHandler,
		protocolHandler:  protocolHandler,
		timeSplitHandler: timeSplitHandler,
		briefHandler:     briefHandler,
		memoryHandler:    memoryHandler,
		outlookHandler:   outlookHandler,
		briefingHandler:  briefingHandler,
		snapshotHandler:  snapshotHandler,

		staticDir:      staticDir,
		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Static front-end
	r.mux.Handle("GET /", http.FileServer(http.Dir(r.staticDir)))

	// Priority endpoints
	r.mux.HandleFunc("GET /api/priorities", r.priorityHandler.ListPriorities)
	r.mux.HandleFunc("POST /api/priorities", r.priorityHandler.CreatePriority)
	r.mux.HandleFunc("DELETE /api/priorities/{id}", r.priorityHandler.DeletePriority)

	// Project endpoints
	r.mux.HandleFunc("GET /api/projects", r.projectHandler.ListProjects)
	r.mux.HandleFunc("POST /api/projects", r.projectHandler.CreateProject)
	r.mux.HandleFunc("PUT /api/projects/{id}", r.projectHandler.UpdateProject)
	r.mux.HandleFunc("DELETE /api/projects/{id}", r.projectHandler.DeleteProject)

	// Meeting endpoints
	r.mux.HandleFunc("GET /api/meetings", r.meetingHandler.ListMeetings)
	r.mux.HandleFunc("POST /api/meetings", r.meetingHandler.CreateMeeting)
	r.mux.HandleFunc("PUT /api/meetings/{id}", r.meetingHandler.UpdateMeeting)
	r.mux.HandleFunc("DELETE /api/meetings/{id}", r.meetingHandler.DeleteMeeting)

	// Protocol endpoints
	r.mux.HandleFunc("GET /api/protocol", r.protocolHandler.GetProtocol)
	r.mux.HandleFunc("PUT /api/protocol", r.protocolHandler.UpdateProtocol)

	// Time split endpoints
	r.mux.HandleFunc("GET /api/time-split", r.timeSplitHandler.GetTimeSplit)
	r.mux.HandleFunc("PUT /api/time-split", r.timeSplitHandler.UpdateTimeSplit)

	// Daily brief endpoints
	r.mux.HandleFunc("GET /api/daily-briefs", r.briefHandler.GetDailyBrief)
	r.mux.HandleFunc("POST /api/daily-briefs", r.briefHandler.SaveDailyBrief)

	// Learning memory endpoints
	r.mux.HandleFunc("GET /api/learning-memory", r.memoryHandler.ListMemories)
	r.mux.HandleFunc("POST /api/learning-memory", r.memoryHandler.CreateMemory)

	// Outlook endpoints
	r.mux.HandleFunc("GET /api/outlook/auth", r.outlookHandler.Auth)
	r.mux.HandleFunc("GET /api/outlook/callback", r.outlookHandler.Callback)
	r.mux.HandleFunc("GET /api/outlook/status", r.outlookHandler.Status)
	r.mux.HandleFunc("GET /api/outlook/events", r.outlookHandler.Events)
	r.mux.HandleFunc("GET /api/outlook/mails", r.outlookHandler.Mails)
	r.mux.HandleFunc("GET /api/outlook/message", r.outlookHandler.Message)

	// AI endpoints
	r.mux.HandleFunc("POST /api/generate_brief", r.briefingHandler.GenerateBrief)
	r.mux.HandleFunc("POST /api/inbox/snapshot", r.snapshotHandler.Snapshot)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
