// Package mazeapi exposes the maze solver over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strings"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SolverController handles maze solving requests.
type SolverController struct {
	solver i.Solver
}

// NewSolverController initializes a SolverController.
func NewSolverController(s i.Solver) (*SolverController, error) {
	if s == nil {
		return nil, errors.New("solver is nil")
	}
	return &SolverController{
		solver: s,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolverController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", sc.solve)
	}
}

// RegisterProtected registers protected routes.
func (sc *SolverController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", sc.solution)
	}
}

// solve handles maze solving requests.
func (sc *SolverController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := sc.solver.Solve(ctx.Request.Context(), request.Rows)
	if err != nil {
		if maze.IsMalformed(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

// solution retrieves a stored solution.
func (sc *SolverController) solution(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	solution, err := sc.solver.ByID(ctx.Request.Context(), ID)
	if err != nil {
		if errors.Is(err, dmn.ErrSolutionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading solution"})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

func splitRows(rendered string) []string {
	if rendered == "" {
		return []string{}
	}
	return strings.Split(rendered, "\n")
}
