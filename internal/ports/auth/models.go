package auth

// Claims representa la identidad extraída de un token ya verificado.
type Claims struct {
	UserID string
	Email  string
}

// Session es la sesión devuelta por el proveedor de auth al autenticar.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}
