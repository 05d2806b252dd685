package apiserver

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/netrixframework/safez3/log"
	"github.com/netrixframework/safez3/z3"
	"github.com/pkg/errors"
)

// CheckRequest is the JSON form of a `/check` request
type CheckRequest struct {
	Script string `json:"script" binding:"required"`
}

// handleCheck is the handler for the route `/check`. The body is either
// an SMT-LIB2 script or a JSON CheckRequest.
func (srv *APIServer) handleCheck(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, srv.maxBody)
	script, err := readScript(c)
	if err != nil {
		srv.Logger.With(log.LogParams{"error": err}).Info("Bad check request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request"})
		return
	}

	report, err := srv.ctx.Check(script)
	if err != nil {
		// Anything but a bad script is a server side misconfiguration.
		status := http.StatusInternalServerError
		if errors.Is(err, z3.ErrParse) {
			status = http.StatusBadRequest
		}
		srv.Logger.With(log.LogParams{"error": err}).Info("Check failed")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func readScript(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), gin.MIMEJSON) {
		var req CheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", err
		}
		return req.Script, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", errors.New("empty script")
	}
	return string(body), nil
}

func (srv *APIServer) handleParams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"params": srv.ctx.SolverParams(),
	})
}

func (srv *APIServer) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": z3.Version(),
	})
}

func (srv *APIServer) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"checks": srv.ctx.Counter.Value(),
	})
}
