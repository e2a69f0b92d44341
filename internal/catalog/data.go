package catalog

var likertLabelsEN = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

var likertLabelsES = []string{
	"Nunca",
	"Rara vez",
	"A veces",
	"Casi siempre",
	"Siempre",
}

var leaderContextEN = []ContextField{
	{ID: "area", Label: "What area do you lead?", Placeholder: "e.g. Logistics, Operations, Retail", Type: FieldText},
	{ID: "role", Label: "What is your role/title?", Placeholder: "e.g. Regional Manager, VP Operations", Type: FieldText},
	{ID: "teamSize", Label: "How many people are on your team?", Placeholder: "e.g. 12", Type: FieldNumber},
	{ID: "dependencies", Label: "How many departments depend directly on your team's work?", Placeholder: "e.g. 3", Type: FieldNumber},
}

var leaderContextES = []ContextField{
	{ID: "area", Label: "¿Qué área lideras?", Placeholder: "Ej. Logística, Operaciones, Retail", Type: FieldText},
	{ID: "role", Label: "¿Cuál es tu cargo?", Placeholder: "Ej. Gerente Regional, VP Operaciones", Type: FieldText},
	{ID: "teamSize", Label: "¿Cuántas personas tiene tu equipo?", Placeholder: "Ej. 12", Type: FieldNumber},
	{ID: "dependencies", Label: "¿Cuántas áreas dependen directamente del trabajo de tu equipo?", Placeholder: "Ej. 3", Type: FieldNumber},
}

var collaboratorContextEN = []ContextField{
	{ID: "role", Label: "What is your role?", Placeholder: "e.g. Analyst, Coordinator", Type: FieldText},
	{ID: "team", Label: "Which team do you belong to?", Placeholder: "e.g. North Logistics", Type: FieldText},
}

var collaboratorContextES = []ContextField{
	{ID: "role", Label: "¿Cuál es tu cargo?", Placeholder: "Ej. Analista, Coordinador", Type: FieldText},
	{ID: "team", Label: "¿A qué equipo perteneces?", Placeholder: "Ej. Logística Norte", Type: FieldText},
}

var factorsEN = []Factor{
	{
		ID:          "psychological_safety",
		Name:        "Psychological Safety",
		Description: "How safe do team members feel to take risks and be vulnerable?",
		Questions: []Question{
			{ID: "ps1", Text: "Team members feel comfortable admitting mistakes without fear of consequences."},
			{ID: "ps2", Text: "People openly share concerns or disagreements during meetings."},
			{ID: "ps3", Text: "It's safe to ask for help without being judged as incompetent."},
			{ID: "ps4", Text: "New ideas are welcomed, even if they challenge the status quo."},
			{ID: "ps5", Text: "No one on the team would deliberately undermine another member's efforts."},
		},
	},
	{
		ID:          "dependability",
		Name:        "Dependability",
		Description: "Can team members count on each other to deliver quality work on time?",
		Questions: []Question{
			{ID: "dp1", Text: "Team members consistently meet deadlines and commitments."},
			{ID: "dp2", Text: "When someone says they'll do something, it gets done."},
			{ID: "dp3", Text: "Quality standards are maintained even under pressure."},
			{ID: "dp4", Text: "People take ownership of their responsibilities without needing constant follow-up."},
			{ID: "dp5", Text: "The team can be relied upon to deliver results consistently."},
		},
	},
	{
		ID:          "structure_clarity",
		Name:        "Structure & Clarity",
		Description: "Are roles, plans, and goals clear to everyone?",
		Questions: []Question{
			{ID: "sc1", Text: "Each team member knows exactly what is expected of them."},
			{ID: "sc2", Text: "Roles and responsibilities are clearly defined and understood."},
			{ID: "sc3", Text: "The team has clear short-term and long-term goals."},
			{ID: "sc4", Text: "Processes and workflows are well-documented and followed."},
			{ID: "sc5", Text: "Decision-making authority is clear — people know who decides what."},
		},
	},
	{
		ID:          "work_impact",
		Name:        "Work Impact",
		Description: "Does the team believe their work matters and creates value?",
		Questions: []Question{
			{ID: "wi1", Text: "Team members see how their work contributes to the company's success."},
			{ID: "wi2", Text: "The team's output has a visible impact on business results."},
			{ID: "wi3", Text: "People feel their daily tasks are meaningful, not just busywork."},
			{ID: "wi4", Text: "The team receives recognition for contributions that drive results."},
			{ID: "wi5", Text: "Members can clearly articulate the value they bring to the organization."},
		},
	},
	{
		ID:          "meaning",
		Name:        "Meaning",
		Description: "Do team members find personal purpose in their work?",
		Questions: []Question{
			{ID: "mn1", Text: "People find personal fulfillment in the work they do here."},
			{ID: "mn2", Text: "Team members feel connected to a purpose beyond just earning a paycheck."},
			{ID: "mn3", Text: "The team's mission resonates with individual values."},
			{ID: "mn4", Text: "People feel energized and motivated by the challenges they face."},
			{ID: "mn5", Text: "Work here allows people to grow in directions that matter to them."},
		},
	},
	{
		ID:          "leadership",
		Name:        "Leadership",
		Description: "How effective is the leadership in enabling the team?",
		Questions: []Question{
			{ID: "ld1", Text: "Leadership provides clear direction and communicates priorities effectively."},
			{ID: "ld2", Text: "Leaders actively remove obstacles that slow the team down."},
			{ID: "ld3", Text: "Feedback from leadership is frequent, specific, and constructive."},
			{ID: "ld4", Text: "Leaders trust the team to make decisions within their scope."},
			{ID: "ld5", Text: "Leadership balances performance expectations with team well-being."},
		},
	},
}

var factorsES = []Factor{
	{
		ID:          "psychological_safety",
		Name:        "Seguridad Psicológica",
		Description: "¿Qué tan seguros se sienten los miembros del equipo para asumir riesgos y mostrarse vulnerables?",
		Questions: []Question{
			{ID: "ps1", Text: "Los miembros del equipo se sienten cómodos admitiendo errores sin temor a consecuencias."},
			{ID: "ps2", Text: "Las personas comparten abiertamente inquietudes o desacuerdos en las reuniones."},
			{ID: "ps3", Text: "Es seguro pedir ayuda sin ser juzgado como incompetente."},
			{ID: "ps4", Text: "Las nuevas ideas son bienvenidas, incluso si desafían el statu quo."},
			{ID: "ps5", Text: "Nadie en el equipo socavaría deliberadamente el esfuerzo de otro miembro."},
		},
	},
	{
		ID:          "dependability",
		Name:        "Confiabilidad",
		Description: "¿Pueden los miembros del equipo contar unos con otros para entregar trabajo de calidad a tiempo?",
		Questions: []Question{
			{ID: "dp1", Text: "Los miembros del equipo cumplen consistentemente plazos y compromisos."},
			{ID: "dp2", Text: "Cuando alguien dice que hará algo, lo hace."},
			{ID: "dp3", Text: "Los estándares de calidad se mantienen incluso bajo presión."},
			{ID: "dp4", Text: "Las personas se apropian de sus responsabilidades sin necesidad de seguimiento constante."},
			{ID: "dp5", Text: "Se puede confiar en que el equipo entregue resultados de forma consistente."},
		},
	},
	{
		ID:          "structure_clarity",
		Name:        "Estructura y Claridad",
		Description: "¿Son claros los roles, planes y objetivos para todos?",
		Questions: []Question{
			{ID: "sc1", Text: "Cada miembro del equipo sabe exactamente qué se espera de él."},
			{ID: "sc2", Text: "Los roles y responsabilidades están claramente definidos y entendidos."},
			{ID: "sc3", Text: "El equipo tiene objetivos claros de corto y largo plazo."},
			{ID: "sc4", Text: "Los procesos y flujos de trabajo están bien documentados y se siguen."},
			{ID: "sc5", Text: "La autoridad de decisión es clara — la gente sabe quién decide qué."},
		},
	},
	{
		ID:          "work_impact",
		Name:        "Impacto del Trabajo",
		Description: "¿Cree el equipo que su trabajo importa y crea valor?",
		Questions: []Question{
			{ID: "wi1", Text: "Los miembros del equipo ven cómo su trabajo contribuye al éxito de la empresa."},
			{ID: "wi2", Text: "El resultado del equipo tiene un impacto visible en los resultados del negocio."},
			{ID: "wi3", Text: "Las personas sienten que sus tareas diarias son significativas, no solo trabajo de relleno."},
			{ID: "wi4", Text: "El equipo recibe reconocimiento por las contribuciones que generan resultados."},
			{ID: "wi5", Text: "Los miembros pueden articular claramente el valor que aportan a la organización."},
		},
	},
	{
		ID:          "meaning",
		Name:        "Significado",
		Description: "¿Encuentran los miembros del equipo un propósito personal en su trabajo?",
		Questions: []Question{
			{ID: "mn1", Text: "Las personas encuentran realización personal en el trabajo que hacen aquí."},
			{ID: "mn2", Text: "Los miembros del equipo se sienten conectados a un propósito más allá del salario."},
			{ID: "mn3", Text: "La misión del equipo resuena con los valores individuales."},
			{ID: "mn4", Text: "Las personas se sienten motivadas y con energía ante los retos que enfrentan."},
			{ID: "mn5", Text: "El trabajo aquí permite crecer en direcciones que importan a cada uno."},
		},
	},
	{
		ID:          "leadership",
		Name:        "Liderazgo",
		Description: "¿Qué tan efectivo es el liderazgo habilitando al equipo?",
		Questions: []Question{
			{ID: "ld1", Text: "El liderazgo da dirección clara y comunica prioridades de forma efectiva."},
			{ID: "ld2", Text: "Los líderes remueven activamente los obstáculos que frenan al equipo."},
			{ID: "ld3", Text: "El feedback del liderazgo es frecuente, específico y constructivo."},
			{ID: "ld4", Text: "Los líderes confían en que el equipo tome decisiones dentro de su ámbito."},
			{ID: "ld5", Text: "El liderazgo equilibra las expectativas de desempeño con el bienestar del equipo."},
		},
	},
}
