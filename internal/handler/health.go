package handler

import (
	"context"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It always returns HTTP 200 with {"status":"ok"} while the server is running;
// the dataset block reports whether recommendations can be served yet.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	st := s.travel.Status()

	ds := gen.DatasetStatus{State: gen.DatasetStatusState(st.State)}
	if st.State == domain.CatalogLoaded {
		version := st.Snapshot.Version
		loadedAt := st.Snapshot.LoadedAt
		ds.Version = &version
		ds.LoadedAt = &loadedAt
	}

	return gen.GetHealth200JSONResponse{Status: "ok", Dataset: ds}, nil
}
