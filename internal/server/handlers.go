package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/DavidVeksler/ResumeForge/internal/ats"
	"github.com/DavidVeksler/ResumeForge/internal/db"
	"github.com/DavidVeksler/ResumeForge/internal/fetch"
	"github.com/DavidVeksler/ResumeForge/internal/keywords"
	"github.com/DavidVeksler/ResumeForge/internal/llm"
	"github.com/DavidVeksler/ResumeForge/internal/optimizer"
	"github.com/DavidVeksler/ResumeForge/internal/rendering"
	"github.com/DavidVeksler/ResumeForge/internal/types"
)

const maxRequestBodyBytes = 4 << 20 // 4 MB

type loginRequest struct {
	Password string `json:"password"`
}

type keywordsRequest struct {
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url"`
}

type scoreRequest struct {
	Resume         json.RawMessage `json:"resume"`
	JobDescription string          `json:"job_description"`
	Keywords       []string        `json:"keywords"`
}

type optimizeRequest struct {
	Resume         json.RawMessage `json:"resume"`
	JobDescription string          `json:"job_description"`
	JobURL         string          `json:"job_url"`
	Save           bool            `json:"save"`
}

type renderRequest struct {
	Resume json.RawMessage `json:"resume"`
}

type parseRequest struct {
	ResumeText string `json:"resume_text"`
}

// handleLogin exchanges the configured password for a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusNotFound, "authentication is not configured")
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.passwordCfg.VerifyPassword(req.Password, s.passwordHash) {
		s.errorResponse(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		log.Printf("Error generating token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}

// handleKeywords extracts ranked keywords from a job description. The
// description can be given inline or as a URL to fetch.
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	jobDescription, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if strings.TrimSpace(jobDescription) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description or job_url is required")
		return
	}

	extracted := keywords.New(s.lex, jobDescription).Extract()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": extracted,
		"count":    len(extracted),
	})
}

// handleScore computes the ATS score for a resume. Keywords may be
// supplied directly or extracted from a job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resume, ok := s.parseResume(w, req.Resume)
	if !ok {
		return
	}

	kws := req.Keywords
	if len(kws) == 0 && req.JobDescription != "" {
		kws = keywords.New(s.lex, req.JobDescription).Extract()
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"score":     ats.Score(resume, kws),
		"keywords":  kws,
		"breakdown": ats.ScoreWithBreakdown(resume, kws),
	})
}

// handleOptimize runs the full before/after optimization pass and
// optionally persists the run.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resume, ok := s.parseResume(w, req.Resume)
	if !ok {
		return
	}

	jobDescription, err := s.resolveJobDescription(r, req.JobDescription, req.JobURL)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if strings.TrimSpace(jobDescription) == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description or job_url is required")
		return
	}

	result, err := optimizer.Optimize(r.Context(), resume, jobDescription, s.lex)
	if err != nil {
		log.Printf("Error optimizing resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "optimization failed")
		return
	}

	response := map[string]any{
		"default_score":     result.DefaultScore,
		"optimized_score":   result.OptimizedScore,
		"customized_resume": result.Customized,
		"role_keywords":     result.RoleKeywords,
		"summary":           result.Summary,
	}

	if req.Save {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
			return
		}
		customizedJSON, err := json.Marshal(result.Customized)
		if err != nil {
			log.Printf("Error marshaling customized resume: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to save run")
			return
		}
		id, err := s.db.SaveRun(r.Context(), &db.OptimizationRun{
			JobDescription:   jobDescription,
			RoleKeywords:     result.RoleKeywords,
			DefaultScore:     result.DefaultScore,
			OptimizedScore:   result.OptimizedScore,
			Resume:           json.RawMessage(req.Resume),
			CustomizedResume: customizedJSON,
		})
		if err != nil {
			log.Printf("Error saving run: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to save run")
			return
		}
		response["run_id"] = id
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleRender produces the ATS-friendly HTML document for a resume.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resume, ok := s.parseResume(w, req.Resume)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendering.Render(resume, s.skillsProc))); err != nil {
		log.Printf("Error writing rendered resume: %v", err)
	}
}

// handleParse converts free-form resume text to structured data via
// the model client.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "resume parsing is not configured")
		return
	}

	var req parseRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	resume, err := llm.ParseResume(r.Context(), s.llmClient, req.ResumeText)
	if err != nil {
		log.Printf("Error parsing resume: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "failed to parse resume text")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleListRuns returns recent optimization runs without payloads.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("Error listing runs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs, "count": len(runs)})
}

// handleGetRun returns one optimization run with payloads.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrRunNotFound) {
			s.errorResponse(w, http.StatusNotFound, "run not found")
			return
		}
		log.Printf("Error fetching run %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch run")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleDeleteRun removes a stored optimization run.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	if err := s.db.DeleteRun(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrRunNotFound) {
			s.errorResponse(w, http.StatusNotFound, "run not found")
			return
		}
		log.Printf("Error deleting run %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete run")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseResume decodes and validates a resume payload, writing the
// error response itself when validation fails.
func (s *Server) parseResume(w http.ResponseWriter, raw json.RawMessage) (*types.ResumeData, bool) {
	if len(raw) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return nil, false
	}

	resume, err := types.ParseResumeData(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	if result := s.validator.ValidateResume(resume); !result.Valid() {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "resume validation failed",
			"fields": result.Errors,
		})
		return nil, false
	}
	return resume, true
}

// resolveJobDescription prefers inline text over a URL fetch.
func (s *Server) resolveJobDescription(r *http.Request, inline, jobURL string) (string, error) {
	if strings.TrimSpace(inline) != "" || jobURL == "" {
		return inline, nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = s.useBrowser
	result, err := fetch.JobPosting(r.Context(), jobURL, opts)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)).Decode(dst)
}
