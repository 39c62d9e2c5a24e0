// Package api exposes the order parser over HTTP.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/m-zayed5722/food-sense/internal/catalog"
	"github.com/m-zayed5722/food-sense/internal/evaluation"
	"github.com/m-zayed5722/food-sense/internal/format"
	"github.com/m-zayed5722/food-sense/internal/models"
	"github.com/m-zayed5722/food-sense/internal/parser"
)

// CatalogLoader reloads menu items from the backing store.
type CatalogLoader interface {
	LoadCatalog(seed []models.MenuItemTemplate) ([]models.MenuItemTemplate, error)
}

// Server handles order parsing requests. The catalog index and rule parser
// are swapped as a unit under the mutex on reload so no request ever sees
// a stale index paired with a fresh catalog.
type Server struct {
	router    *gin.Engine
	loader    CatalogLoader
	llmParser parser.Parser
	jwtSecret string

	mu         sync.RWMutex
	index      *catalog.Index
	ruleParser *parser.RuleParser
}

// NewServer creates a server over a built catalog index. The loader may be
// nil, which disables catalog reloading; the LLM parser may be nil, which
// disables comparison and LLM-backed parsing.
func NewServer(index *catalog.Index, loader CatalogLoader, llmParser parser.Parser, jwtSecret string) *Server {
	s := &Server{
		router:     gin.Default(),
		loader:     loader,
		llmParser:  llmParser,
		jwtSecret:  jwtSecret,
		index:      index,
		ruleParser: parser.NewRuleParser(index),
	}
	s.setupRoutes()
	return s
}

// Router returns the Gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "food-sense API is running"})
	})
	s.router.GET("/ws", s.handleWebSocket)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/orders/parse", s.handleParse)
		v1.POST("/orders/compare", s.handleCompare)

		v1.GET("/menu", s.handleMenu)
		v1.GET("/menu/:restaurant", s.handleRestaurantMenu)
		v1.GET("/restaurants", s.handleRestaurants)

		v1.GET("/evaluation", s.handleEvaluation)

		v1.POST("/catalog/reload", authRequired(s.jwtSecret), s.handleReload)
	}
}

func (s *Server) current() (*catalog.Index, *parser.RuleParser) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index, s.ruleParser
}

// ParseRequest is the body of an order parsing call.
type ParseRequest struct {
	Text   string `json:"text" binding:"required"`
	Parser string `json:"parser,omitempty"`
}

// ParseResponse carries the parsed order and its rendered summary.
type ParseResponse struct {
	Order      *models.Order `json:"order"`
	Summary    string        `json:"summary"`
	Restaurant string        `json:"restaurant,omitempty"`
	Confidence float64       `json:"confidence"`
	ParserUsed string        `json:"parser_used"`
	ElapsedMS  int64         `json:"elapsed_ms"`
}

func (s *Server) handleParse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	index, rule := s.current()

	var p parser.Parser = rule
	parserUsed := "rule"
	if req.Parser == "llm" {
		if s.llmParser == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "LLM parser is not configured"})
			return
		}
		p = s.llmParser
		parserUsed = "llm"
	}

	start := time.Now()
	order, err := p.Parse(c.Request.Context(), req.Text)
	elapsed := time.Since(start)
	if err != nil {
		observeParse(parserUsed, "error", elapsed, 0)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	outcome := "matched"
	if len(order.Lines) == 0 {
		outcome = "empty"
	}
	observeParse(parserUsed, outcome, elapsed, len(order.Lines))

	restaurant, confidence := index.Detect(parser.Normalize(req.Text))
	c.JSON(http.StatusOK, ParseResponse{
		Order:      order,
		Summary:    format.Summary(order),
		Restaurant: restaurant,
		Confidence: confidence,
		ParserUsed: parserUsed,
		ElapsedMS:  elapsed.Milliseconds(),
	})
}

// CompareResponse carries a rule and an LLM parse of the same text.
type CompareResponse struct {
	RuleOrder  *models.Order `json:"rule_order"`
	LLMOrder   *models.Order `json:"llm_order"`
	Comparison string        `json:"comparison"`
}

func (s *Server) handleCompare(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if s.llmParser == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "LLM parser is not configured"})
		return
	}

	_, rule := s.current()
	ruleOrder, _ := rule.Parse(c.Request.Context(), req.Text)

	llmOrder, err := s.llmParser.Parse(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CompareResponse{
		RuleOrder:  ruleOrder,
		LLMOrder:   llmOrder,
		Comparison: format.Comparison("RULE", ruleOrder, "LLM", llmOrder),
	})
}

func (s *Server) handleMenu(c *gin.Context) {
	index, _ := s.current()
	c.JSON(http.StatusOK, index.Items())
}

func (s *Server) handleRestaurantMenu(c *gin.Context) {
	index, _ := s.current()
	items := index.RestaurantItems(c.Param("restaurant"))
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown restaurant"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// RestaurantInfo summarizes one restaurant's share of the catalog.
type RestaurantInfo struct {
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

func (s *Server) handleRestaurants(c *gin.Context) {
	index, _ := s.current()
	infos := make([]RestaurantInfo, 0)
	for _, name := range index.RestaurantNames() {
		infos = append(infos, RestaurantInfo{
			Name:      name,
			ItemCount: len(index.RestaurantItems(name)),
		})
	}
	c.JSON(http.StatusOK, infos)
}

func (s *Server) handleEvaluation(c *gin.Context) {
	_, rule := s.current()
	result := evaluation.NewEvaluator().Evaluate(c.Request.Context(), rule)
	c.JSON(http.StatusOK, result)
}

// handleReload rebuilds the catalog index from the backing store and swaps
// it in atomically with a fresh rule parser.
func (s *Server) handleReload(c *gin.Context) {
	if s.loader == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no catalog store configured"})
		return
	}

	items, err := s.loader.LoadCatalog(catalog.SampleMenu())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	index, err := catalog.NewIndex(items, catalog.DefaultRestaurants)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.index = index
	s.ruleParser = parser.NewRuleParser(index)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "items": len(items)})
}
