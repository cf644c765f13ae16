package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
)

// defaultProjects seed the board the first time it is read empty.
var defaultProjects = []entities.Project{
	{Name: "PPL 5th Evaporator", Health: 62, Risk: "Delay: condenser delivery", Action: "Escalate vendor; recover 7 days via parallel E&I"},
	{Name: "Alkali Scrubber SAP-A/B", Health: 78, Risk: "None major", Action: "Lock FAT date; update drawings rev-C"},
	{Name: "TG-4 (23 MW)", Health: 54, Risk: "Civils lagging 2 weeks", Action: "Add 2nd crew; weekend shift"},
}

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectRepo repositories.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{
		projectRepo: projectRepo,
	}
}

// ListProjects handles GET /api/projects. An empty table is seeded
// with the default board before responding.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectRepo.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if len(projects) == 0 {
		for i := range defaultProjects {
			p := defaultProjects[i]
			if err := h.projectRepo.Create(r.Context(), &p); err != nil {
				respondWithAppError(w, err)
				return
			}
		}
		projects, err = h.projectRepo.List(r.Context())
		if err != nil {
			respondWithAppError(w, err)
			return
		}
	}

	respondWithJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /api/projects. The payload is ignored;
// a placeholder project is created for the client to edit in place.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	project := &entities.Project{
		Name:   "New Project",
		Health: 75,
		Risk:   "N/A",
		Action: "Define next steps",
	}
	if err := h.projectRepo.Create(r.Context(), project); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, project)
}

// UpdateProject handles PUT /api/projects/{id}. Absent payload fields
// keep their stored values.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Health *int    `json:"health"`
		Risk   *string `json:"risk"`
		Action *string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	project, err := h.projectRepo.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Health != nil {
		project.Health = *req.Health
	}
	if req.Risk != nil {
		project.Risk = *req.Risk
	}
	if req.Action != nil {
		project.Action = *req.Action
	}

	if err := h.projectRepo.Update(r.Context(), project); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.projectRepo.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}
