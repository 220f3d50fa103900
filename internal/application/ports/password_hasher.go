package ports

// PasswordHasher servicio de hash unidireccional de contraseñas.
// Los casos de uso dependen de esta interfaz; la implementación vive en infraestructura.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}
