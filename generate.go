package atshim

//go:generate go run ./cmd/stubgen -o stubs_gen.go
