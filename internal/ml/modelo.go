package ml

import (
	"encoding/json"
	"fmt"
)

const (
	// UmbralAltoRiesgo es la política fija de clasificación: probabilidad
	// >= 0.7 se reporta como riesgo alto
	UmbralAltoRiesgo = 0.7

	RiesgoAlto = "alto"
	RiesgoBajo = "bajo"
)

// arbol es un árbol de decisión en la representación plana exportada por el
// pipeline de entrenamiento: el nodo i es hoja cuando Left[i] y Right[i]
// son -1, y la partición usa la convención <= sobre el umbral.
type arbol struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"left"`
	Right     []int       `json:"right"`
	Value     [][2]float64 `json:"value"` // conteos [clase negativa, clase positiva] por nodo
}

// ModeloACV es el bosque aleatorio pre-entrenado que estima la probabilidad
// de un evento de ACV. Se carga una sola vez al iniciar el proceso y es de
// solo lectura desde entonces.
type ModeloACV struct {
	NumEntradas  int       `json:"n_features"`
	Nombres      []string  `json:"feature_names"`
	Importancias []float64 `json:"feature_importances"`
	Arboles      []arbol   `json:"trees"`
}

// CargarModelo decodifica el artefacto JSON y valida que su contrato de
// entrada coincida con el vector de 21 características de este código.
// Un desajuste es fatal: mejor fallar al arrancar que predecir basura.
func CargarModelo(datos []byte) (*ModeloACV, error) {
	var m ModeloACV
	if err := json.Unmarshal(datos, &m); err != nil {
		return nil, fmt.Errorf("artefacto de modelo corrupto: %w", err)
	}
	if err := m.validar(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *ModeloACV) validar() error {
	if m.NumEntradas != NumCaracteristicas {
		return fmt.Errorf("el modelo espera %d entradas pero el contrato define %d", m.NumEntradas, NumCaracteristicas)
	}
	if len(m.Nombres) != NumCaracteristicas {
		return fmt.Errorf("el modelo declara %d nombres de características, se esperaban %d", len(m.Nombres), NumCaracteristicas)
	}
	for i, nombre := range m.Nombres {
		if nombre != NombresCaracteristicas[i] {
			return fmt.Errorf("característica %d del modelo es %q, el contrato define %q", i, nombre, NombresCaracteristicas[i])
		}
	}
	if len(m.Importancias) != NumCaracteristicas {
		return fmt.Errorf("el modelo declara %d importancias, se esperaban %d", len(m.Importancias), NumCaracteristicas)
	}
	if len(m.Arboles) == 0 {
		return fmt.Errorf("el modelo no contiene árboles")
	}
	for t, a := range m.Arboles {
		n := len(a.Feature)
		if n == 0 || len(a.Threshold) != n || len(a.Left) != n || len(a.Right) != n || len(a.Value) != n {
			return fmt.Errorf("árbol %d con arreglos inconsistentes", t)
		}
		for i := 0; i < n; i++ {
			// Hoja: ambos hijos en -1. Cualquier otra combinación con -1 o
			// índices negativos es un árbol malformado.
			if a.Left[i] == -1 && a.Right[i] == -1 {
				continue
			}
			// El export plano es topológico: los hijos siempre van después del
			// padre, lo que además descarta ciclos en el recorrido.
			if a.Left[i] <= i || a.Left[i] >= n || a.Right[i] <= i || a.Right[i] >= n {
				return fmt.Errorf("árbol %d: nodo %d apunta fuera de rango", t, i)
			}
			if a.Feature[i] < 0 || a.Feature[i] >= NumCaracteristicas {
				return fmt.Errorf("árbol %d: nodo %d usa la característica %d fuera del contrato", t, i, a.Feature[i])
			}
		}
	}
	return nil
}

// PredictProba retorna la probabilidad de la clase positiva (evento de ACV)
// para el vector dado: el promedio sobre los árboles de la fracción positiva
// de la hoja alcanzada. Determinista para un mismo vector y artefacto.
func (m *ModeloACV) PredictProba(x []float64) (float64, error) {
	if len(x) != NumCaracteristicas {
		return 0, fmt.Errorf("vector de %d características, se esperaban %d", len(x), NumCaracteristicas)
	}
	var suma float64
	for i := range m.Arboles {
		suma += m.Arboles[i].probabilidad(x)
	}
	return suma / float64(len(m.Arboles)), nil
}

func (a *arbol) probabilidad(x []float64) float64 {
	i := 0
	for a.Left[i] != -1 {
		if x[a.Feature[i]] <= a.Threshold[i] {
			i = a.Left[i]
		} else {
			i = a.Right[i]
		}
	}
	total := a.Value[i][0] + a.Value[i][1]
	if total == 0 {
		return 0
	}
	return a.Value[i][1] / total
}

// Clasificar aplica el umbral de política sobre la probabilidad
func Clasificar(probabilidad float64) string {
	if probabilidad >= UmbralAltoRiesgo {
		return RiesgoAlto
	}
	return RiesgoBajo
}

// Importancia retorna la importancia global de la característica en la
// posición dada del contrato
func (m *ModeloACV) Importancia(indice int) float64 {
	return m.Importancias[indice]
}
