package initchecker

import "fmt"

// CheckInit valida en el arranque que las dependencias de un handler ya fueron
// inicializadas; el orden de NewHandler en initializers importa
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: número impar de argumentos")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: el primer argumento del par debe ser string")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("dependencia %s sin inicializar", name))
		}
	}
}
