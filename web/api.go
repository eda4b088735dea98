package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"net/http"
	"spatialneighbors/geometry"
	"spatialneighbors/index"
	ownIo "spatialneighbors/io"
	"spatialneighbors/osm"
	"strconv"
	"sync"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	response := ErrorResponse{
		Error: message,
	}
	if err != nil {
		response.Details = err.Error()
	}
	return response
}

type CountResponse struct {
	Count int `json:"count"`
}

func StartServer(port string, router *mux.Router) {
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, router)
	sigolo.FatalCheck(err)
}

// NewRouter creates the HTTP API for the given index. Requests only read the index and hold the read lock while doing
// so. Whoever modifies the index concurrently has to hold the write lock.
func NewRouter(spatialIndex index.SpatialIndex[osm.Node], lock *sync.RWMutex) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/in-circle", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")
		writer.Header().Set("Content-Type", "application/json")

		center, radius, err := parseCircle(request)
		if err != nil {
			sigolo.Errorf("Invalid in-circle request '%s': %+v", request.URL.RawQuery, err)
			writeErrorResponse(writer, http.StatusBadRequest, fmt.Sprintf("Invalid parameters: %s", err.Error()), err)
			return
		}

		sigolo.Debugf("Query nodes within %v around %s", radius, geometry.FormatPoint(center))

		lock.RLock()
		nodes := spatialIndex.InCircle(center, radius)
		lock.RUnlock()

		sigolo.Debugf("Found %d nodes", len(nodes))

		err = ownIo.WriteNodesAsGeoJson(nodes, writer)
		if err != nil {
			sigolo.Errorf("Error writing query result: %+v", err)
			writeErrorResponse(writer, http.StatusInternalServerError, fmt.Sprintf("Error writing query result: %s", err.Error()), err)
			return
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/count", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")
		writer.Header().Set("Content-Type", "application/json")

		lock.RLock()
		count := spatialIndex.Count()
		lock.RUnlock()

		responseBytes, err := json.Marshal(CountResponse{Count: count})
		if err != nil {
			sigolo.Errorf("Error marshalling count response: %+v", err)
			writeErrorResponse(writer, http.StatusInternalServerError, "Error creating response.", err)
			return
		}

		_, err = writer.Write(responseBytes)
		if err != nil {
			sigolo.Errorf("Error writing count response: %+v", err)
		}
	}).Methods(http.MethodGet)

	return r
}

func parseCircle(request *http.Request) (orb.Point, float64, error) {
	x, err := parseFloatParameter(request, "x")
	if err != nil {
		return orb.Point{}, 0, err
	}

	y, err := parseFloatParameter(request, "y")
	if err != nil {
		return orb.Point{}, 0, err
	}

	radius, err := parseFloatParameter(request, "radius")
	if err != nil {
		return orb.Point{}, 0, err
	}
	if !geometry.IsValidRadius(radius) {
		return orb.Point{}, 0, errors.Errorf("Radius must not be negative but was %v", radius)
	}

	return orb.Point{x, y}, radius, nil
}

func parseFloatParameter(request *http.Request, name string) (float64, error) {
	valueString := request.URL.Query().Get(name)
	if valueString == "" {
		return 0, errors.Errorf("Parameter '%s' is missing", name)
	}

	value, err := strconv.ParseFloat(valueString, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Parameter '%s' is not a number", name)
	}

	return value, nil
}

func writeErrorResponse(writer http.ResponseWriter, status int, message string, err error) {
	writer.WriteHeader(status)

	errorResponseBytes, err := json.Marshal(NewErrorResponse(message, err))
	if err != nil {
		sigolo.Errorf("Error creating and marshalling error response object: %+v", err)
	}

	_, err = writer.Write(errorResponseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
