package wire

import (
	"club-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Katalog publik: tarif, PC per lantai, jadwal sesi
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/api/v1/tariffs", catalogHandler.Tariffs)
	r.Get("/api/v1/pcs", catalogHandler.PCs)
	r.Get("/api/v1/sessions", catalogHandler.Sessions)
}
