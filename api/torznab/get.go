package torznab

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ytznab/ytznab/api/types"
	"github.com/ytznab/ytznab/internal/models"
	torznabxml "github.com/ytznab/ytznab/internal/torznab"
	apperrors "github.com/ytznab/ytznab/pkg/errors"
)

// Get handles the Torznab endpoint. Every request authenticates first,
// then dispatches on the t parameter.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := deps.Config

		apiKey := c.Query("apikey")
		if apiKey == "" {
			apiKey = c.GetHeader("X-Api-Key")
		}
		if cfg.Indexer.APIKey == "" || apiKey != cfg.Indexer.APIKey {
			logrus.WithField("remote", c.ClientIP()).Warn("Rejected request with invalid API key")
			writeError(c, http.StatusUnauthorized, torznabxml.ErrIncorrectCreds, "Invalid API key")
			return
		}

		switch t := c.Query("t"); t {
		case "caps":
			writeXML(c, http.StatusOK, torznabxml.Capabilities(cfg.Indexer.Name))
		case "search", "tvsearch", "tv-search":
			handleSearch(c, deps)
		case "download":
			handleDownload(c)
		case "":
			writeError(c, http.StatusBadRequest, torznabxml.ErrMissingParameter, "Missing t parameter")
		default:
			writeError(c, http.StatusBadRequest, torznabxml.ErrNoSuchFunction, fmt.Sprintf("Unknown t parameter: %s", t))
		}
	}
}

// handleSearch translates the query into an adapter call and renders the
// results as a feed. An empty query yields an empty feed with HTTP 200:
// Prowlarr probes connectivity that way.
func handleSearch(c *gin.Context, deps *types.Dependencies) {
	req, err := parseSearchRequest(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, torznabxml.ErrIncorrectParameter, err.Error())
		return
	}

	cfg := deps.Config
	self := selfURL(c, cfg.Indexer.BasePath)

	if req.Query == "" {
		writeXML(c, http.StatusOK, torznabxml.NewFeed(cfg.Indexer.Name, self))
		return
	}

	results, err := deps.Searcher.Search(c.Request.Context(), req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeToolMissing) {
			logrus.WithError(err).Error("Search tool is unreachable")
			writeError(c, http.StatusBadGateway, torznabxml.ErrUnknownError, "Search backend is not available")
			return
		}
		// A failed or timed-out run is not a protocol error: an empty
		// result set is a valid search outcome
		logrus.WithError(err).WithField("query", req.Keywords()).Error("External search failed")
		results = nil
	}

	logrus.WithFields(logrus.Fields{
		"query":   req.Keywords(),
		"results": len(results),
	}).Info("Search handled")

	writeXML(c, http.StatusOK, torznabxml.FeedFromResults(cfg.Indexer.Name, self, results, time.Now()))
}

// handleDownload redirects the upstream client's grab to the source URL
// so its download client receives the watch URL directly
func handleDownload(c *gin.Context) {
	link := c.Query("link")
	if link == "" {
		link = c.Query("id")
	}
	if link == "" {
		writeError(c, http.StatusBadRequest, torznabxml.ErrMissingParameter, "Missing download link")
		return
	}
	c.Redirect(http.StatusFound, link)
}

// parseSearchRequest extracts query, season/episode hints and the result
// limit from the request parameters
func parseSearchRequest(c *gin.Context) (models.SearchRequest, error) {
	req := models.SearchRequest{Query: c.Query("q")}

	var err error
	if req.Season, err = intParam(c, "season"); err != nil {
		return req, err
	}
	if req.Episode, err = intParam(c, "ep"); err != nil {
		return req, err
	}
	if req.Limit, err = intParam(c, "limit"); err != nil {
		return req, err
	}

	return req, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	return value, nil
}

// selfURL reconstructs the externally visible endpoint URL for the
// feed's atom:link self reference
func selfURL(c *gin.Context, basePath string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   c.Request.Host,
		Path:   path.Join(basePath, "api"),
	}
	return u.String()
}

// writeXML renders any document with the XML declaration prepended
func writeXML(c *gin.Context, status int, doc interface{}) {
	raw, err := xml.Marshal(doc)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to serialize response")
		return
	}
	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(status)
	_, _ = c.Writer.WriteString(xml.Header)
	_, _ = c.Writer.Write(raw)
}

// writeError renders a Torznab error document
func writeError(c *gin.Context, status int, protoErr torznabxml.Err, description string) {
	writeXML(c, status, torznabxml.NewErrorDoc(protoErr, description))
}
