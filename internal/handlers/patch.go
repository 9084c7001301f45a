package handlers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/models"
	"github.com/yukikurage/project-dashboard-api/internal/services"
	"github.com/yukikurage/project-dashboard-api/internal/utils"
)

const dateMessage = "must be a date (RFC 3339 or YYYY-MM-DD)"

// patchBody reads a PATCH body as a raw JSON object so that omitted keys are
// told apart from keys sent as null
type patchBody struct {
	raw  map[string]any
	errs map[string]string
}

func bindPatch(c *gin.Context) (*patchBody, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, err
	}
	return &patchBody{raw: raw, errs: map[string]string{}}, nil
}

func (p *patchBody) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &services.ValidationError{Fields: p.errs}
}

// str returns the string under key. With nullable, null reads as the empty string.
func (p *patchBody) str(key string, nullable bool) *string {
	v, ok := p.raw[key]
	if !ok {
		return nil
	}
	if v == nil {
		if !nullable {
			p.errs[key] = "cannot be null"
			return nil
		}
		empty := ""
		return &empty
	}
	s, ok := v.(string)
	if !ok {
		p.errs[key] = "must be a string"
		return nil
	}
	return &s
}

// date returns the date under key, or cleared when it was sent as null
func (p *patchBody) date(key string, nullable bool) (value *time.Time, cleared bool) {
	v, ok := p.raw[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		if !nullable {
			p.errs[key] = "cannot be null"
		}
		return nil, nullable
	}
	s, ok := v.(string)
	if !ok {
		p.errs[key] = dateMessage
		return nil, false
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		p.errs[key] = dateMessage
		return nil, false
	}
	return &t, false
}

// id returns the id under key, or cleared when it was sent as null
func (p *patchBody) id(key string, nullable bool) (value *uint64, cleared bool) {
	v, ok := p.raw[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		if !nullable {
			p.errs[key] = "cannot be null"
		}
		return nil, nullable
	}
	id, ok := asID(v)
	if !ok {
		p.errs[key] = "must be a positive integer id"
		return nil, false
	}
	return &id, false
}

func (p *patchBody) integer(key string) *int {
	v, ok := p.raw[key]
	if !ok {
		return nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		p.errs[key] = "must be an integer"
		return nil
	}
	n := int(f)
	return &n
}

func asID(v any) (uint64, bool) {
	switch x := v.(type) {
	case float64:
		if x <= 0 || x != math.Trunc(x) {
			return 0, false
		}
		return uint64(x), true
	case string:
		id, err := strconv.ParseUint(strings.TrimSpace(x), 10, 64)
		return id, err == nil && id > 0
	}
	return 0, false
}

func parseProjectPatch(p *patchBody) (models.ProjectPatch, error) {
	patch := models.ProjectPatch{
		Code:        p.str("code", false),
		Name:        p.str("name", false),
		Description: p.str("description", true),
		Duration:    p.integer("duration"),
	}
	patch.StartDate, _ = p.date("start_date", false)
	patch.EndDate, _ = p.date("end_date", false)
	if s := p.str("status", false); s != nil {
		status := models.ProjectStatus(*s)
		patch.Status = &status
	}
	return patch, p.err()
}

func parseTeamMemberPatch(p *patchBody) (models.TeamMemberPatch, error) {
	patch := models.TeamMemberPatch{
		Name:   p.str("name", false),
		Email:  p.str("email", false),
		Role:   p.str("role", true),
		Avatar: p.str("avatar", true),
	}
	return patch, p.err()
}

func parseTaskPatch(p *patchBody) (models.TaskPatch, error) {
	patch := models.TaskPatch{Title: p.str("title", false)}
	patch.ProjectID, _ = p.id("project_id", false)
	patch.AssigneeID, patch.ClearAssignee = p.id("assignee_id", true)
	patch.DueDate, patch.ClearDueDate = p.date("due_date", true)
	if s := p.str("status", false); s != nil {
		status := models.TaskStatus(*s)
		patch.Status = &status
	}
	if s := p.str("priority", false); s != nil {
		priority := models.TaskPriority(*s)
		patch.Priority = &priority
	}
	return patch, p.err()
}

func parseAssignmentPatch(p *patchBody) (models.ProjectAssignmentPatch, error) {
	patch := models.ProjectAssignmentPatch{Role: p.str("role", false)}
	patch.JoinedAt, _ = p.date("joined_at", false)
	return patch, p.err()
}

// parseDateField parses a required date from a create request
func parseDateField(errs map[string]string, key, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	t, err := utils.ParseDate(value)
	if err != nil {
		errs[key] = dateMessage
	}
	return t
}

// parseOptionalDate parses an optional date from a create request
func parseOptionalDate(errs map[string]string, key string, value *string) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	t, err := utils.ParseDate(*value)
	if err != nil {
		errs[key] = dateMessage
		return nil
	}
	return &t
}

func fieldErrors(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return &services.ValidationError{Fields: errs}
}
