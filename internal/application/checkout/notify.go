package checkout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// sendReceipt envía el recibo al correo del usuario. Nunca falla la operación: el pedido ya está confirmado.
func (s *Service) sendReceipt(ctx context.Context, user entity.SessionUser, o *entity.Order, in dto.PaymentRequest, log zerolog.Logger) {
	if s.notifier == nil {
		return
	}
	r := Receipt{
		OrderNumber:   o.Number,
		Date:          o.CreatedAt,
		Subtotal:      in.Subtotal,
		Shipping:      in.Shipping,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Address:       in.Address,
	}
	for _, p := range in.Products {
		r.Lines = append(r.Lines, ReceiptLine{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}

	n := Notification{To: user.Email, Subject: ReceiptSubject, Body: FormatReceipt(r)}
	if s.renderer != nil {
		doc, err := s.renderer.RenderReceipt(ctx, r)
		if err != nil {
			log.Warn().Err(err).Msg("recibo PDF no generado, se envía solo texto")
		} else {
			n.Attachments = append(n.Attachments, Attachment{
				Filename:    "receipt-" + o.Number + ".pdf",
				ContentType: "application/pdf",
				Content:     doc,
			})
		}
	}

	if err := s.notifier.Send(ctx, n); err != nil {
		log.Error().Err(err).Str("to", user.Email).Msg("error enviando recibo")
		return
	}
	log.Debug().Str("to", user.Email).Msg("recibo enviado")
}
