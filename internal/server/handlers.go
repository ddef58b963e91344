package server

import (
	"embed"
	"net/http"

	"github.com/vancomm/minesweeper/internal/mines"
)

//go:embed static
var static embed.FS

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, static, "static/index.html")
}

type preset struct {
	Name      mines.Difficulty `json:"name"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	MineCount int              `json:"mine_count"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	presets := make([]preset, 0, len(mines.Difficulties()))
	for _, d := range mines.Difficulties() {
		p, err := d.Params()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			s.log.WithError(err).Error("unable to resolve preset")
			return
		}
		presets = append(presets, preset{d, p.Width, p.Height, p.MineCount})
	}
	sendJSONOrLog(w, s.log, presets)
}

type newGameQuery struct {
	Difficulty string `schema:"difficulty"`
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	MineCount  int    `schema:"mine_count"`
}

// params resolves the board a query asks for. Explicit dimensions win over
// a difficulty; an empty query falls back to def.
func (q newGameQuery) params(def mines.GameParams) (mines.GameParams, error) {
	if q.Width != 0 || q.Height != 0 {
		p := mines.GameParams{Width: q.Width, Height: q.Height, MineCount: q.MineCount}
		return p, p.Validate()
	}
	if q.Difficulty != "" {
		d, err := mines.ParseDifficulty(q.Difficulty)
		if err != nil {
			return mines.GameParams{}, err
		}
		return d.Params()
	}
	return def, nil
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var query newGameQuery
	if err := s.decoder.Decode(&query, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.log, wrapError(err))
		return
	}

	params, err := query.params(s.defaults)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.log, wrapError(err))
		return
	}

	engine, err := mines.NewEngine(params, s.newRand())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.log.WithError(err).Error("unable to start a game")
		return
	}

	conn, err := s.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("unable to upgrade")
		return
	}

	sess := &session{
		log: s.log.WithFields(params.Fields()).
			WithField("remote_addr", r.RemoteAddr),
		conn:   conn,
		engine: engine,
	}
	sess.run(r.Context())
}
