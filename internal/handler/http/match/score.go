// Package match provides the resume/job-description matching endpoint.
package match

import (
	"errors"
	"io"
	"net/http"

	"texttools/internal/domain/entity"
	"texttools/internal/handler/http/respond"
	"texttools/internal/infra/pdftext"
	"texttools/internal/usecase/match"
)

// maxResumeSize caps the accepted resume upload.
const maxResumeSize = 5 * 1024 * 1024

// ScoreHandler scores an uploaded PDF resume against a job description.
// The request is multipart/form-data with a "resume" file part and a
// "job_description" field.
type ScoreHandler struct{ Svc *match.Service }

// ReportDTO is the JSON shape of a match report.
type ReportDTO struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched_keywords"`
	Missing []string `json:"missing_keywords"`
}

func (h ScoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("invalid multipart form"))
		return
	}

	file, _, err := r.FormFile("resume")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("resume file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	resumePDF, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("resume file could not be read"))
		return
	}
	if len(resumePDF) > maxResumeSize {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("resume file too large"))
		return
	}

	jobDescription := r.FormValue("job_description")

	report, err := h.Svc.ScoreResume(r.Context(), resumePDF, jobDescription)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, ReportDTO{
		Score:   report.Score,
		Matched: report.Matched,
		Missing: report.Missing,
	})
}

func writeMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrBlankText):
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("job_description is required"))
	case errors.Is(err, match.ErrNoJobKeywords),
		errors.Is(err, match.ErrEmptyResume),
		errors.Is(err, pdftext.ErrNotPDF):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "resume or job description is invalid", err))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
