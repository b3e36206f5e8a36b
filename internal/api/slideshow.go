package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/crazymoves-backend/internal/session"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
)

type SlideshowApi struct {
	Sessions session.Store
	Catalogs puzzle.Catalogs
}

func NewSlideshowApi(sessions session.Store, catalogs puzzle.Catalogs) *SlideshowApi {
	return &SlideshowApi{
		Sessions: sessions,
		Catalogs: catalogs,
	}
}

func (a *SlideshowApi) Register(r gin.IRouter) {
	r.POST("/sessions", a.CreateSession)
	r.GET("/sessions/:session_id", a.GetSession)
	r.POST("/sessions/:session_id/reveal", a.RevealAnswer)
	r.POST("/sessions/:session_id/next", a.Next)
	r.POST("/sessions/:session_id/unlock", a.UnlockNext)

	r.GET("/puzzles/chess", a.ChessPuzzles)
	r.GET("/puzzles/football", a.FootballPuzzles)
	r.GET("/fen", a.Fen)
}

func (a *SlideshowApi) CreateSession(ctx *gin.Context) {
	id, view, err := a.Sessions.Create(ctx.Request.Context())
	if err != nil {
		log.Println("Create session error:", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"view":       view,
	})
}

func (a *SlideshowApi) GetSession(ctx *gin.Context) {
	a.apply(ctx, session.View)
}

func (a *SlideshowApi) RevealAnswer(ctx *gin.Context) {
	a.apply(ctx, session.Reveal)
}

func (a *SlideshowApi) Next(ctx *gin.Context) {
	a.apply(ctx, session.Next)
}

func (a *SlideshowApi) UnlockNext(ctx *gin.Context) {
	a.apply(ctx, session.Unlock)
}

func (a *SlideshowApi) apply(ctx *gin.Context, cmd session.Command) {
	id := ctx.Param("session_id")
	view, err := a.Sessions.Apply(ctx.Request.Context(), id, cmd)
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, sequence.ErrLocked):
		ctx.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
			"view":  view,
		})
	case err != nil:
		log.Printf("Session %s error: %s\n", id, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
	default:
		ctx.JSON(http.StatusOK, view)
	}
}

type chessEntry struct {
	Index  int         `json:"index"`
	Title  string      `json:"title"`
	ToMove puzzle.Side `json:"to_move"`
	FEN    string      `json:"fen"`
}

type footballEntry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// ChessPuzzles lists the chess catalog without answers.
func (a *SlideshowApi) ChessPuzzles(ctx *gin.Context) {
	entries := make([]chessEntry, 0, a.Catalogs.Chess.Len())
	for i, p := range a.Catalogs.Chess.Puzzles() {
		entries = append(entries, chessEntry{
			Index:  i,
			Title:  p.Title,
			ToMove: p.ToMove,
			FEN:    a.Catalogs.Chess.FEN(i),
		})
	}
	ctx.JSON(http.StatusOK, entries)
}

// FootballPuzzles lists the football catalog without answers.
func (a *SlideshowApi) FootballPuzzles(ctx *gin.Context) {
	entries := make([]footballEntry, 0, a.Catalogs.Football.Len())
	for i, p := range a.Catalogs.Football.Puzzles() {
		entries = append(entries, footballEntry{
			Index: i,
			Title: p.Title,
			Image: p.Image,
		})
	}
	ctx.JSON(http.StatusOK, entries)
}

// tokenList accepts both repeated params and comma lists (?white=Ka1,Pa2).
func tokenList(ctx *gin.Context, key string) []string {
	var tokens []string
	for _, v := range ctx.QueryArray(key) {
		for _, tok := range strings.Split(v, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// Fen encodes an ad-hoc placement, e.g. /fen?white=Ka1&black=Kb8.
func (a *SlideshowApi) Fen(ctx *gin.Context) {
	p := puzzle.ChessPuzzle{
		White: tokenList(ctx, "white"),
		Black: tokenList(ctx, "black"),
	}
	fen, err := puzzle.Encode(p)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"fen": fen,
	})
}
