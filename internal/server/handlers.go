package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/correction"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseRequest represents the request body for /parse and /parse/ai.
type ParseRequest struct {
	Text                 string `json:"text" validate:"required"`
	MaxSkillsPerCategory int    `json:"max_skills_per_category,omitempty" validate:"omitempty,min=1"`
	MaxResponsibilities  int    `json:"max_responsibilities,omitempty" validate:"omitempty,min=1"`
}

// ParseResponse represents the response for /parse and /parse/ai.
type ParseResponse struct {
	RequestID string                  `json:"request_id"`
	Profile   *types.CandidateProfile `json:"profile"`
	// Refined reports whether model refinement was applied on top of the
	// heuristic extraction.
	Refined bool `json:"refined,omitempty"`
}

// CorrectRequest represents the request body for /correct.
type CorrectRequest struct {
	Profile *types.CandidateProfile `json:"profile" validate:"required"`
	Path    string                  `json:"path" validate:"required"`
	Value   string                  `json:"value"`
}

// CorrectResponse represents the response for /correct.
type CorrectResponse struct {
	RequestID string                  `json:"request_id"`
	Profile   *types.CandidateProfile `json:"profile"`
}

// handleParse runs heuristic extraction over the submitted text.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}

	profile, err := pipeline.ExtractProfile(r.Context(), req.Text, s.parseOptions(req))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		RequestID: uuid.New().String(),
		Profile:   profile,
	})
}

// handleParseAI runs extraction and then model refinement of low-confidence
// fields. Refinement failure degrades to the heuristic result rather than
// failing the request.
func (s *Server) handleParseAI(w http.ResponseWriter, r *http.Request) {
	if s.refiner == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI refinement is not configured (missing API key)")
		return
	}

	req, ok := s.decodeParseRequest(w, r)
	if !ok {
		return
	}

	profile, err := pipeline.ExtractProfile(r.Context(), req.Text, s.parseOptions(req))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	refined := true
	refinedProfile, err := s.refiner.Refine(r.Context(), req.Text, profile)
	if err != nil {
		log.Printf("Refinement failed, returning heuristic profile: %v", err)
		refinedProfile = profile
		refined = false
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		RequestID: uuid.New().String(),
		Profile:   refinedProfile,
		Refined:   refined,
	})
}

// handleCorrect applies one field correction to a submitted profile.
func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	corrected, err := correction.Apply(req.Profile, req.Path, req.Value)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CorrectResponse{
		RequestID: uuid.New().String(),
		Profile:   corrected,
	})
}

func (s *Server) decodeParseRequest(w http.ResponseWriter, r *http.Request) (ParseRequest, bool) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return req, false
	}
	return req, true
}

func (s *Server) parseOptions(req ParseRequest) pipeline.Options {
	opts := s.opts
	if req.MaxSkillsPerCategory > 0 {
		opts.MaxSkillsPerCategory = req.MaxSkillsPerCategory
	}
	if req.MaxResponsibilities > 0 {
		opts.MaxResponsibilities = req.MaxResponsibilities
	}
	return opts
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
