package api

import (
	"context"
	"net/url"
	"time"
)

// SystemStatus describes the server build.
type SystemStatus struct {
	Version   string    `json:"version"`
	StartTime time.Time `json:"startTime"`
	OS        string    `json:"os,omitempty"`
	Database  string    `json:"database,omitempty"`
	AppData   string    `json:"appData,omitempty"`
}

// HealthCheck is a single server-side health warning.
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"` // ok, notice, warning, error
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl,omitempty"`
}

// DiskSpace reports free space on one root.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// Task is a scheduled server job.
type Task struct {
	Name          string     `json:"name"`
	Interval      int        `json:"interval"` // minutes
	LastExecution *time.Time `json:"lastExecution,omitempty"`
	NextExecution *time.Time `json:"nextExecution,omitempty"`
	Running       bool       `json:"running"`
}

// LogEntry is a server log line.
type LogEntry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Logger  string    `json:"logger,omitempty"`
	Message string    `json:"message"`
}

// Backup is a server database backup.
type Backup struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Size int64     `json:"size"`
	Time time.Time `json:"time"`
}

// Status returns server version information.
func (c *Client) Status(ctx context.Context) (*SystemStatus, error) {
	var resp SystemStatus
	if err := c.get(ctx, "/system/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health returns current health warnings.
func (c *Client) Health(ctx context.Context) ([]HealthCheck, error) {
	var resp []HealthCheck
	if err := c.get(ctx, "/system/health", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DiskSpace returns free space per root folder.
func (c *Client) DiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var resp []DiskSpace
	if err := c.get(ctx, "/system/disk", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Tasks lists scheduled jobs.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var resp []Task
	if err := c.get(ctx, "/system/tasks", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RunTask triggers a scheduled job immediately.
func (c *Client) RunTask(ctx context.Context, name string) error {
	return c.post(ctx, "/system/tasks/"+url.PathEscape(name)+"/run", nil, nil)
}

// Logs returns recent server log lines, optionally filtered by level.
func (c *Client) Logs(ctx context.Context, level string, limit int) ([]LogEntry, error) {
	var resp []LogEntry
	q := newQuery().str("level", level).num("limit", limit)
	if err := c.get(ctx, "/system/logs", q.values(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Backups lists database backups.
func (c *Client) Backups(ctx context.Context) ([]Backup, error) {
	var resp []Backup
	if err := c.get(ctx, "/system/backups", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateBackup asks the server to write a new backup.
func (c *Client) CreateBackup(ctx context.Context) (*Backup, error) {
	var resp Backup
	if err := c.post(ctx, "/system/backup", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
