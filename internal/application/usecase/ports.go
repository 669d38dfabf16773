package usecase

import (
	"context"
	"io"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// PhotoStorage guarda la foto de un empleado y devuelve la URL pública del archivo.
// key identifica al dueño (ID del empleado); una subida nueva reemplaza a la anterior.
type PhotoStorage interface {
	Save(ctx context.Context, key, filename string, r io.Reader) (string, error)
}

// CardPDFGenerator genera la tarjeta imprimible con el QR apuntando a cardURL.
type CardPDFGenerator interface {
	GenerateCardPDF(ctx context.Context, employee *entity.Employee, company *entity.Company, cardURL string) ([]byte, error)
}
