package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fingerdex/constants"
	"github.com/jsphweid/fingerdex/model"
	"github.com/jsphweid/fingerdex/pipeline"
	"github.com/jsphweid/fingerdex/predict"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func HandlePredict(w http.ResponseWriter, r *http.Request) {
	reqId := uuid.New().String()

	var raw []model.NoteJSON
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Body must be a JSON array of notes", 400)
		return
	}

	notes := make([]model.Note, 0, len(raw))
	for _, n := range raw {
		notes = append(notes, n.ToNote())
	}

	right := predict.Heuristic{Hand: model.Right}
	left := predict.Heuristic{Hand: model.Left}
	res, err := pipeline.Predict(notes, right, left)
	if err != nil {
		fmt.Printf("[%v] predict failed: %v\n", reqId, err)
		w.WriteHeader(500)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
		return
	}
	fmt.Printf("[%v] fingered %v notes\n", reqId, len(res))

	out := make([]model.NoteJSON, 0, len(res))
	for _, fn := range res {
		out = append(out, model.FromFingered(fn))
	}
	json.NewEncoder(w).Encode(out)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/predict", HandlePredict).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
