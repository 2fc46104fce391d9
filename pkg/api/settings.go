package api

import (
	"context"
	"fmt"
)

// GeneralSettings holds server-wide options.
type GeneralSettings struct {
	InstanceName        string `json:"instanceName"`
	Port                int    `json:"port"`
	BindAddress         string `json:"bindAddress"`
	URLBase             string `json:"urlBase,omitempty"`
	LogLevel            string `json:"logLevel"`
	TMDBAPIKey          string `json:"tmdbApiKey,omitempty"`
	AutoSearchOnAdd     bool   `json:"autoSearchOnAdd"`
	RSSSyncIntervalMins int    `json:"rssSyncIntervalMinutes"`
	RecycleBinPath      string `json:"recycleBinPath,omitempty"`
}

// NamingSettings holds the rename templates.
type NamingSettings struct {
	RenameMovies         bool   `json:"renameMovies"`
	RenameEpisodes       bool   `json:"renameEpisodes"`
	MovieFolderFormat    string `json:"movieFolderFormat"`
	MovieFileFormat      string `json:"movieFileFormat"`
	SeriesFolderFormat   string `json:"seriesFolderFormat"`
	SeasonFolderFormat   string `json:"seasonFolderFormat"`
	EpisodeFileFormat    string `json:"episodeFileFormat"`
	ReplaceIllegalChars  bool   `json:"replaceIllegalCharacters"`
	ColonReplacementMode string `json:"colonReplacement,omitempty"`
}

// RootFolder is a library root on the server's filesystem.
type RootFolder struct {
	ID         int64     `json:"id"`
	Path       string    `json:"path"`
	MediaType  MediaType `json:"mediaType"`
	FreeSpace  int64     `json:"freeSpace"`
	Accessible bool      `json:"accessible"`
}

// DownloadClient is a configured torrent or usenet client.
type DownloadClient struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name"`
	Implementation string `json:"implementation"` // qbittorrent, transmission, sabnzbd, ...
	Protocol       string `json:"protocol"`
	Host           string `json:"host"`
	Port           int    `json:"port"`
	UseSSL         bool   `json:"useSsl"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	APIKey         string `json:"apiKey,omitempty"`
	Category       string `json:"category,omitempty"`
	Priority       int    `json:"priority"`
	Enabled        bool   `json:"enabled"`
}

// Tag labels library items.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// TestResult is the outcome of a connectivity test.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// General returns the general settings.
func (c *Client) General(ctx context.Context) (*GeneralSettings, error) {
	var resp GeneralSettings
	if err := c.get(ctx, "/settings/general", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateGeneral replaces the general settings.
func (c *Client) UpdateGeneral(ctx context.Context, s GeneralSettings) (*GeneralSettings, error) {
	var resp GeneralSettings
	if err := c.put(ctx, "/settings/general", s, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Naming returns the naming settings.
func (c *Client) Naming(ctx context.Context) (*NamingSettings, error) {
	var resp NamingSettings
	if err := c.get(ctx, "/settings/naming", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateNaming replaces the naming settings.
func (c *Client) UpdateNaming(ctx context.Context, s NamingSettings) (*NamingSettings, error) {
	var resp NamingSettings
	if err := c.put(ctx, "/settings/naming", s, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QualityProfiles lists quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var resp []QualityProfile
	if err := c.get(ctx, "/settings/qualityprofiles", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// QualityProfile fetches one profile.
func (c *Client) QualityProfile(ctx context.Context, id int64) (*QualityProfile, error) {
	var resp QualityProfile
	if err := c.get(ctx, fmt.Sprintf("/settings/qualityprofiles/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateQualityProfile adds a profile.
func (c *Client) CreateQualityProfile(ctx context.Context, p QualityProfile) (*QualityProfile, error) {
	var resp QualityProfile
	if err := c.post(ctx, "/settings/qualityprofiles", p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateQualityProfile replaces a profile.
func (c *Client) UpdateQualityProfile(ctx context.Context, p QualityProfile) (*QualityProfile, error) {
	var resp QualityProfile
	if err := c.put(ctx, fmt.Sprintf("/settings/qualityprofiles/%d", p.ID), p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteQualityProfile removes a profile.
func (c *Client) DeleteQualityProfile(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/settings/qualityprofiles/%d", id), nil)
}

// RootFolders lists library roots.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var resp []RootFolder
	if err := c.get(ctx, "/settings/rootfolders", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddRootFolder registers a library root.
func (c *Client) AddRootFolder(ctx context.Context, path string, mediaType MediaType) (*RootFolder, error) {
	var resp RootFolder
	body := RootFolder{Path: path, MediaType: mediaType}
	if err := c.post(ctx, "/settings/rootfolders", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteRootFolder removes a library root.
func (c *Client) DeleteRootFolder(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/settings/rootfolders/%d", id), nil)
}

// DownloadClients lists download clients.
func (c *Client) DownloadClients(ctx context.Context) ([]DownloadClient, error) {
	var resp []DownloadClient
	if err := c.get(ctx, "/settings/downloadclients", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddDownloadClient registers a download client.
func (c *Client) AddDownloadClient(ctx context.Context, dc DownloadClient) (*DownloadClient, error) {
	var resp DownloadClient
	if err := c.post(ctx, "/settings/downloadclients", dc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateDownloadClient replaces a download client.
func (c *Client) UpdateDownloadClient(ctx context.Context, dc DownloadClient) (*DownloadClient, error) {
	var resp DownloadClient
	if err := c.put(ctx, fmt.Sprintf("/settings/downloadclients/%d", dc.ID), dc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteDownloadClient removes a download client.
func (c *Client) DeleteDownloadClient(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/settings/downloadclients/%d", id), nil)
}

// TestDownloadClient asks the server to connect using the given settings.
func (c *Client) TestDownloadClient(ctx context.Context, dc DownloadClient) (*TestResult, error) {
	var resp TestResult
	if err := c.post(ctx, "/settings/downloadclients/test", dc, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Indexers lists indexers.
func (c *Client) Indexers(ctx context.Context) ([]Indexer, error) {
	var resp []Indexer
	if err := c.get(ctx, "/settings/indexers", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AddIndexer registers an indexer.
func (c *Client) AddIndexer(ctx context.Context, idx Indexer) (*Indexer, error) {
	var resp Indexer
	if err := c.post(ctx, "/settings/indexers", idx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateIndexer replaces an indexer.
func (c *Client) UpdateIndexer(ctx context.Context, idx Indexer) (*Indexer, error) {
	var resp Indexer
	if err := c.put(ctx, fmt.Sprintf("/settings/indexers/%d", idx.ID), idx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteIndexer removes an indexer.
func (c *Client) DeleteIndexer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/settings/indexers/%d", id), nil)
}

// TestIndexer asks the server to query the indexer with the given settings.
func (c *Client) TestIndexer(ctx context.Context, idx Indexer) (*TestResult, error) {
	var resp TestResult
	if err := c.post(ctx, "/settings/indexers/test", idx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tags lists tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var resp []Tag
	if err := c.get(ctx, "/settings/tags", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateTag adds a tag.
func (c *Client) CreateTag(ctx context.Context, label string) (*Tag, error) {
	var resp Tag
	if err := c.post(ctx, "/settings/tags", Tag{Label: label}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
