package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xrsl/applykit/pkg/agents"
	"github.com/xrsl/applykit/pkg/errs"
	"github.com/xrsl/applykit/pkg/publish"
	"github.com/xrsl/applykit/pkg/wizard"
)

type summarizeRequest struct {
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url"`
}

// jobDescription resolves the request to raw posting text, fetching
// job_url when no inline text was supplied.
func (s *Server) jobDescription(c *gin.Context, req summarizeRequest) (string, error) {
	if strings.TrimSpace(req.JobDescription) != "" {
		return req.JobDescription, nil
	}
	if strings.TrimSpace(req.JobURL) == "" {
		return "", errs.Validation("job_description", "is required")
	}
	if s.fetcher == nil {
		return "", errs.Validation("job_url", "URL fetching is not enabled")
	}
	return s.fetcher.JobText(c.Request.Context(), req.JobURL)
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}

	jd, err := s.jobDescription(c, req)
	if err != nil {
		writeError(c, err)
		return
	}

	summary, err := s.ctrl.Summarizer.Summarize(c.Request.Context(), jd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type draftRequest struct {
	JobDescription string                 `json:"job_description"`
	CompanyName    string                 `json:"company_name"`
	Resume         string                 `json:"resume"`
	Summary        *agents.JobSummary     `json:"jd_summary"`
	Samples        []agents.WritingSample `json:"writing_samples"`
}

func (s *Server) handleDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}

	draft, err := s.ctrl.Drafter.Draft(c.Request.Context(), agents.DraftRequest{
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		Resume:         req.Resume,
		Summary:        req.Summary,
		Samples:        req.Samples,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type publishRequest struct {
	CompanyName string             `json:"company_name"`
	Summary     *agents.JobSummary `json:"jd_summary"`
	Draft       *agents.EmailDraft `json:"email_draft"`
	Resume      string             `json:"resume"`
}

func (s *Server) handlePublish(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}

	result, err := s.ctrl.Publisher.Publish(c.Request.Context(), publish.Request{
		CompanyName: req.CompanyName,
		Summary:     req.Summary,
		Draft:       req.Draft,
		Resume:      req.Resume,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleWizardNew(c *gin.Context) {
	sess := s.ctrl.Sessions.NewSession()
	c.JSON(http.StatusCreated, sess.Snapshot())
}

func (s *Server) session(c *gin.Context) *wizard.Session {
	sess := s.ctrl.Sessions.Get(c.Param("id"))
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	}
	return sess
}

func (s *Server) handleWizardGet(c *gin.Context) {
	if sess := s.session(c); sess != nil {
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

func (s *Server) handleWizardDelete(c *gin.Context) {
	if sess := s.session(c); sess != nil {
		s.ctrl.Sessions.Delete(sess.ID)
		c.Status(http.StatusNoContent)
	}
}

type sampleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) handleWizardAddSample(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	var req sampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}
	sample, err := s.ctrl.AddSample(sess.ID, req.Title, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sample)
}

func (s *Server) handleWizardRemoveSample(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	if err := s.ctrl.RemoveSample(sess.ID, c.Param("sid")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleWizardSummarize(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}

	jd, err := s.jobDescription(c, req)
	if err != nil {
		writeError(c, err)
		return
	}

	if _, err := s.ctrl.SubmitJobDescription(c.Request.Context(), sess.ID, jd); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

type resumeRequest struct {
	Resume string `json:"resume"`
}

func (s *Server) handleWizardResume(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.Validation("body", "invalid JSON"))
		return
	}
	if err := s.ctrl.SubmitResume(sess.ID, req.Resume); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) handleWizardDraft(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	if _, err := s.ctrl.DraftEmail(c.Request.Context(), sess.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) handleWizardPublish(c *gin.Context) {
	sess := s.session(c)
	if sess == nil {
		return
	}
	if _, err := s.ctrl.Publish(c.Request.Context(), sess.ID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}
