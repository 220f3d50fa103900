// Package sanitize reescribe los payloads de escritura antes de persistir: descarta o impone los campos
// que solo el servidor puede fijar (auditoría, dueño, estado, privilegios, hash de contraseña).
//
// Cada función devuelve un payload nuevo; el de entrada no se modifica.
package sanitize

import (
	"fmt"

	"github.com/jhoicas/gelato-api/internal/application/dto"
	"github.com/jhoicas/gelato-api/internal/application/ports"
	"github.com/jhoicas/gelato-api/internal/domain/access"
	"github.com/jhoicas/gelato-api/internal/domain/entity"
)

// Sanitizer aplica las reglas por recurso. Necesita el hasher para los usuarios.
type Sanitizer struct {
	hasher ports.PasswordHasher
}

// New construye el sanitizador.
func New(hasher ports.PasswordHasher) *Sanitizer {
	return &Sanitizer{hasher: hasher}
}

func ref[T any](v T) *T { return &v }

// ProductOnCreate impone created_by = llamador e ignora created_by/updated_by del cliente.
func (s *Sanitizer) ProductOnCreate(caller access.Caller, in dto.ProductPayload) dto.ProductPayload {
	out := in
	out.CreatedBy = ref(caller.UserID)
	out.UpdatedBy = nil
	return out
}

// ProductOnUpdate impone updated_by = llamador e ignora created_by del cliente.
func (s *Sanitizer) ProductOnUpdate(caller access.Caller, in dto.ProductPayload) dto.ProductPayload {
	out := in
	out.CreatedBy = nil
	out.UpdatedBy = ref(caller.UserID)
	return out
}

// ComplementOnCreate impone created_by = llamador.
func (s *Sanitizer) ComplementOnCreate(caller access.Caller, in dto.ComplementPayload) dto.ComplementPayload {
	out := in
	out.CreatedBy = ref(caller.UserID)
	out.UpdatedBy = nil
	return out
}

// ComplementOnUpdate impone updated_by = llamador.
func (s *Sanitizer) ComplementOnUpdate(caller access.Caller, in dto.ComplementPayload) dto.ComplementPayload {
	out := in
	out.CreatedBy = nil
	out.UpdatedBy = ref(caller.UserID)
	return out
}

// OrderOnCreate impone user = llamador y status = "Pedido solicitado", sin importar lo enviado.
func (s *Sanitizer) OrderOnCreate(caller access.Caller, in dto.OrderPayload) dto.OrderPayload {
	out := in
	out.User = ref(caller.UserID)
	out.Status = ref(entity.OrderStatusRequested)
	return out
}

// UserOnCreate reemplaza password por su hash. Si el llamador no es superusuario impone
// is_staff=false, is_superuser=false, is_active=true; si lo es, los flags pasan sin cambios.
func (s *Sanitizer) UserOnCreate(caller access.Caller, in dto.UserPayload) (dto.UserPayload, error) {
	out := in
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return dto.UserPayload{}, fmt.Errorf("hash de contraseña: %w", err)
		}
		out.Password = &hash
	}
	if !caller.Superuser() {
		out.IsStaff = ref(false)
		out.IsSuperuser = ref(false)
		out.IsActive = ref(true)
	}
	return out, nil
}

// UserOnUpdate reemplaza password por su hash si viene en el payload. Si el llamador no es
// superusuario impone is_staff=false e is_superuser=false.
//
// is_active NO se impone aquí, a diferencia de UserOnCreate: un usuario sin privilegios puede
// enviar is_active en su propia actualización.
// TODO(usuarios): confirmar si is_active debe forzarse también al actualizar (posible bug).
func (s *Sanitizer) UserOnUpdate(caller access.Caller, in dto.UserPayload) (dto.UserPayload, error) {
	out := in
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return dto.UserPayload{}, fmt.Errorf("hash de contraseña: %w", err)
		}
		out.Password = &hash
	}
	if !caller.Superuser() {
		out.IsStaff = ref(false)
		out.IsSuperuser = ref(false)
	}
	return out, nil
}
