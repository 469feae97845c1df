package catalog

// ResultShape says what an evaluation produces.
type ResultShape string

const (
	ShapeSeries  ResultShape = "series"  // rate + cumulative curves over a time grid
	ShapeScalars ResultShape = "scalars" // a fixed set of named depths
)

// Descriptor is the static metadata of one model: everything a client
// needs to render its page before evaluating anything.
type Descriptor struct {
	Kind        Kind        `json:"-"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Group       string      `json:"group"`
	Description string      `json:"description"`
	Implemented bool        `json:"implemented"`
	Result      ResultShape `json:"result,omitempty"`
	Note        string      `json:"note,omitempty"`
	Equations   []Equation  `json:"equations,omitempty"`
	Symbols     []Symbol    `json:"symbols,omitempty"`
	Params      []ParamSpec `json:"params,omitempty"`
	Grid        *GridSpec   `json:"grid,omitempty"`
}

// Equation is one governing equation in display form.
type Equation struct {
	LaTeX   string `json:"latex"`
	Caption string `json:"caption,omitempty"`
}

// Symbol is one entry of a model's symbol legend.
type Symbol struct {
	Symbol  string `json:"symbol"`
	Meaning string `json:"meaning"`
	Unit    string `json:"unit,omitempty"`
}

// ParamSpec documents one model parameter. Min, Max, and Step are the
// recommended slider range; evaluation accepts values outside it.
type ParamSpec struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol,omitempty"`
	Unit    string  `json:"unit,omitempty"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

// GridSpec describes a uniform evaluation grid in hours.
type GridSpec struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Points int     `json:"points"`
}

// Model groups, one per explorer tab.
const (
	GroupInfiltration       = "infiltration"
	GroupRainfallRunoff     = "rainfall-runoff"
	GroupUnitHydrograph     = "unit-hydrograph"
	GroupEvapotranspiration = "evapotranspiration"
)

// Descriptors returns every cataloged model in display order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Lookup returns the descriptor for a kind.
func Lookup(k Kind) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Kind == k {
			return d, true
		}
	}
	return Descriptor{}, false
}

// LookupSlug returns the descriptor for a slug.
func LookupSlug(slug string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Slug == slug {
			return d, true
		}
	}
	return Descriptor{}, false
}

var descriptors = []Descriptor{
	{
		Kind:        KindGreenAmpt,
		Slug:        "green-ampt",
		Name:        "Green-Ampt",
		Group:       GroupInfiltration,
		Description: "Describes infiltration from soil properties, initial moisture content, and surface ponding. Good for uniform soils with a sharp wetting front.",
		Implemented: true,
		Result:      ShapeSeries,
		Note:        "Cumulative infiltration uses the linear approximation F(t) = Ks·t by default; pass the implicit solver to satisfy the full implicit relation.",
		Equations: []Equation{
			{LaTeX: `f(t) = K_s \left(1 + \frac{\psi \Delta\theta}{F(t)}\right)`, Caption: "infiltration rate"},
			{LaTeX: `F(t) = K_s t + \psi \Delta\theta \ln\left(1 + \frac{F(t)}{\psi \Delta\theta}\right)`, Caption: "cumulative infiltration"},
		},
		Symbols: []Symbol{
			{Symbol: `f(t)`, Meaning: "infiltration rate at time t", Unit: "cm/hr"},
			{Symbol: `F(t)`, Meaning: "cumulative infiltration at time t", Unit: "cm"},
			{Symbol: `K_s`, Meaning: "saturated hydraulic conductivity", Unit: "cm/hr"},
			{Symbol: `\psi`, Meaning: "soil matric potential at wetting front", Unit: "cm"},
			{Symbol: `\Delta\theta = \theta_s - \theta_i`, Meaning: "water content difference"},
			{Symbol: `\theta_s`, Meaning: "saturated water content", Unit: "cm³/cm³"},
			{Symbol: `\theta_i`, Meaning: "initial water content", Unit: "cm³/cm³"},
		},
		Params: []ParamSpec{
			{Key: "ks", Name: "Saturated Hydraulic Conductivity", Symbol: `K_s`, Unit: "cm/hr", Min: 0.1, Max: 10, Default: 1, Step: 0.1},
			{Key: "psi", Name: "Soil Matric Potential at Wetting Front", Symbol: `\psi`, Unit: "cm", Min: 5, Max: 50, Default: 20, Step: 1},
			{Key: "theta_i", Name: "Initial Water Content", Symbol: `\theta_i`, Unit: "cm³/cm³", Min: 0.1, Max: 0.5, Default: 0.2, Step: 0.01},
			{Key: "theta_s", Name: "Saturated Water Content", Symbol: `\theta_s`, Unit: "cm³/cm³", Min: 0.3, Max: 0.6, Default: 0.5, Step: 0.01},
		},
		Grid: &GridSpec{Start: 0.1, End: 24, Points: 100},
	},
	{
		Kind:        KindPhilip,
		Slug:        "philip",
		Name:        "Philip",
		Group:       GroupInfiltration,
		Description: "Two-term approximation solution to Richards' equation, valid at short times.",
		Implemented: true,
		Result:      ShapeSeries,
		Equations: []Equation{
			{LaTeX: `f(t) = \frac{1}{2}St^{-1/2} + K`, Caption: "infiltration rate"},
			{LaTeX: `F(t) = St^{1/2} + Kt`, Caption: "cumulative infiltration"},
		},
		Symbols: []Symbol{
			{Symbol: `f(t)`, Meaning: "infiltration rate at time t", Unit: "cm/hr"},
			{Symbol: `F(t)`, Meaning: "cumulative infiltration at time t", Unit: "cm"},
			{Symbol: `S`, Meaning: "sorptivity", Unit: "cm/hr⁰.⁵"},
			{Symbol: `K`, Meaning: "hydraulic conductivity", Unit: "cm/hr"},
		},
		Params: []ParamSpec{
			{Key: "s", Name: "Sorptivity", Symbol: `S`, Unit: "cm/hr⁰.⁵", Min: 0.1, Max: 5, Default: 1, Step: 0.1},
			{Key: "k", Name: "Hydraulic Conductivity", Symbol: `K`, Unit: "cm/hr", Min: 0.1, Max: 10, Default: 1, Step: 0.1},
		},
		Grid: &GridSpec{Start: 0.1, End: 24, Points: 100},
	},
	{
		Kind:        KindHorton,
		Slug:        "horton",
		Name:        "Horton",
		Group:       GroupInfiltration,
		Description: "Empirical exponential decay of infiltration rate, good for initially dry soils.",
		Implemented: true,
		Result:      ShapeSeries,
		Equations: []Equation{
			{LaTeX: `f(t) = f_c + (f_0 - f_c)e^{-kt}`, Caption: "infiltration rate"},
		},
		Symbols: []Symbol{
			{Symbol: `f(t)`, Meaning: "infiltration rate at time t", Unit: "cm/hr"},
			{Symbol: `f_0`, Meaning: "initial infiltration rate", Unit: "cm/hr"},
			{Symbol: `f_c`, Meaning: "final/constant infiltration rate", Unit: "cm/hr"},
			{Symbol: `k`, Meaning: "decay coefficient", Unit: "1/hr"},
		},
		Params: []ParamSpec{
			{Key: "f0", Name: "Initial Infiltration Rate", Symbol: `f_0`, Unit: "cm/hr", Min: 0.1, Max: 20, Default: 10, Step: 0.1},
			{Key: "fc", Name: "Final Infiltration Rate", Symbol: `f_c`, Unit: "cm/hr", Min: 0.01, Max: 5, Default: 1, Step: 0.01},
			{Key: "k", Name: "Decay Coefficient", Symbol: `k`, Unit: "1/hr", Min: 0.1, Max: 5, Default: 1, Step: 0.1},
		},
		Grid: &GridSpec{Start: 0, End: 24, Points: 100},
	},
	{
		Kind:        KindSCSCurveNumber,
		Slug:        "scs-curve-number",
		Name:        "SCS Curve Number",
		Group:       GroupInfiltration,
		Description: "Empirical curve-number method estimating runoff from rainfall at watershed scale.",
		Implemented: true,
		Result:      ShapeScalars,
		Equations: []Equation{
			{LaTeX: `Q = \begin{cases}
\frac{(P - I_a)^2}{P - I_a + S} & \text{if } P > I_a \\
0 & \text{otherwise}
\end{cases}`, Caption: "runoff"},
			{LaTeX: `S = \frac{25400}{CN} - 254 \text{ (mm)} = \frac{2540}{CN} - 25.4 \text{ (cm)}`, Caption: "potential maximum retention"},
			{LaTeX: `I_a \approx 0.2S \text{ (typically)}`, Caption: "initial abstraction"},
		},
		Symbols: []Symbol{
			{Symbol: `Q`, Meaning: "runoff", Unit: "cm"},
			{Symbol: `P`, Meaning: "rainfall", Unit: "cm"},
			{Symbol: `I_a`, Meaning: "initial abstraction", Unit: "cm"},
			{Symbol: `S`, Meaning: "potential maximum retention after runoff begins", Unit: "cm"},
			{Symbol: `CN`, Meaning: "curve number (0-100)"},
		},
		Params: []ParamSpec{
			{Key: "p", Name: "Rainfall", Symbol: `P`, Unit: "cm", Min: 0.1, Max: 20, Default: 5, Step: 0.1},
			{Key: "cn", Name: "Curve Number", Symbol: `CN`, Min: 30, Max: 100, Default: 70, Step: 1},
			{Key: "ia_ratio", Name: "Initial Abstraction Ratio", Symbol: `I_a/S`, Min: 0.05, Max: 0.3, Default: 0.2, Step: 0.01},
		},
	},
	{
		Kind:        KindRationalMethod,
		Slug:        "rational-method",
		Name:        "Rational Method",
		Group:       GroupRainfallRunoff,
		Description: "Peak discharge from rainfall intensity, runoff coefficient, and drainage area.",
	},
	{
		Kind:        KindTimeArea,
		Slug:        "time-area",
		Name:        "Time-Area",
		Group:       GroupRainfallRunoff,
		Description: "Catchment response routed through a time-area diagram.",
	},
	{
		Kind:        KindUnitHydrograph,
		Slug:        "unit-hydrograph",
		Name:        "Unit Hydrograph",
		Group:       GroupUnitHydrograph,
		Description: "Linear system response of a catchment to unit rainfall, composed by convolution.",
	},
	{
		Kind:        KindPenmanMonteith,
		Slug:        "penman-monteith",
		Name:        "Penman-Monteith",
		Group:       GroupEvapotranspiration,
		Description: "Combination equation for reference evapotranspiration from radiation and aerodynamic terms.",
	},
	{
		Kind:        KindHargreaves,
		Slug:        "hargreaves",
		Name:        "Hargreaves",
		Group:       GroupEvapotranspiration,
		Description: "Temperature-based reference evapotranspiration estimate.",
	},
	{
		Kind:        KindPriestleyTaylor,
		Slug:        "priestley-taylor",
		Name:        "Priestley-Taylor",
		Group:       GroupEvapotranspiration,
		Description: "Radiation-driven simplification of the combination equation.",
	},
}
