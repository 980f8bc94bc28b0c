package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/logging"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/view"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var listenAddr string

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", constants.GetListenAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves views and detection over HTTP",
	Long: `Serves JSON for a browser front end:

  GET  /catalog  modes, chord types, tonics and tuning presets
  POST /view     settings in, everything to draw out
  POST /detect   {"notes": [...]} in, chords and scales out`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(listenAddr)
	},
}

const requestIDHeader = "X-Request-Id"

// NewRouter returns the HTTP API with CORS enabled for every origin.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/catalog", HandleCatalog).Methods("GET")
	router.HandleFunc("/view", HandleView).Methods("POST")
	router.HandleFunc("/detect", HandleDetect).Methods("POST")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := logging.ContextWithFields(r.Context(), logging.Fields{"request_id": id})
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		logging.WithContext(ctx).Info("Handled request", logging.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.WithContext(r.Context()).Warn("Rejected request", logging.Fields{"error": err.Error()})
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.Catalog())
}

// HandleView computes the display for the posted settings. Settings left
// out of the body keep their defaults.
func HandleView(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes))
	if err != nil {
		writeError(w, r, bodyErrorStatus(err), err)
		return
	}

	cfg := view.DefaultConfig()
	if len(reqBody) > 0 {
		if err := json.Unmarshal(reqBody, &cfg); err != nil {
			writeError(w, r, http.StatusBadRequest, err)
			return
		}
	}

	d, err := view.Compute(cfg)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequest
	body := http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		writeError(w, r, bodyErrorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, detectNotes(input.Notes))
}

func serve(addr string) {
	logging.Info("Serving", logging.Fields{"addr": addr})
	logging.Fatal(http.ListenAndServe(addr, NewRouter()), "Server stopped")
}
