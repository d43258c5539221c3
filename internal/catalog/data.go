package catalog

import "github.com/mvilaseca/eduplan/internal/domain"

// builtinItems is the Catalan primary-education curriculum dataset the
// application ships with. The slice order is canonical: area order,
// competency order and representative descriptions all derive from it.
//
// Competency codes repeat across areas (MATEMÀTIQUES CE1 is not MEDI
// CE1); the (area, code) pair is the real key.
var builtinItems = []domain.CurriculumItem{
	// MEDI NATURAL, SOCIAL I CULTURAL
	{
		ID:             "medi-ce1",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE1",
		Saber:          "Cultura científica i digital",
		Description:    "Seleccionar i utilitzar dispositius i recursos digitals de forma responsable i eficient per cercar informació, comunicar-se i crear continguts.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Utilitzar dispositius i recursos digitals de forma segura i responsable.",
			"1.2. Cercar, seleccionar i contrastar informació en entorns digitals.",
			"1.3. Crear continguts digitals senzills en diferents formats.",
		},
	},
	{
		ID:             "medi-ce2",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE2",
		Saber:          "Pensament científic",
		Description:    "Plantejar-se preguntes sobre el món, aplicant el pensament científic per interpretar fets i fenòmens.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Formular preguntes investigables sobre fenòmens naturals i socials.",
			"2.2. Proposar hipòtesis i contrastar-les a través de l'experimentació.",
			"2.3. Extreure conclusions basades en proves i evidències observades.",
		},
	},
	{
		ID:             "medi-ce3",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE3",
		Saber:          "Projectes i disseny",
		Description:    "Resoldre problemes i reptes generant un producte creatiu a partir de projectes interdisciplinaris i pensament computacional.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Dissenyar prototips o solucions creatives a problemes plantejats.",
			"3.2. Aplicar estratègies de pensament computacional (descomposició, patrons).",
			"3.3. Participar en projectes col·laboratius assumint responsabilitats.",
		},
	},
	{
		ID:             "medi-ce4",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE4",
		Saber:          "Consciència corporal i salut",
		Description:    "Conèixer i prendre consciència del propi cos, emocions i hàbits per aconseguir el benestar físic i emocional.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Identificar i localitzar les principals parts i òrgans del cos humà.",
			"4.2. Adoptar hàbits d'alimentació saludable i higiene personal.",
			"4.3. Identificar i expressar emocions pròpies i alienes de manera assertiva.",
		},
	},
	{
		ID:             "medi-ce5",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE5",
		Saber:          "Patrimoni natural i cultural",
		Description:    "Analitzar característiques d'elements naturals, socials i culturals, establint relacions per reconèixer el valor del patrimoni.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"5.1. Identificar elements característics del patrimoni natural i cultural proper.",
			"5.2. Valorar la importància de la conservació del patrimoni.",
			"5.3. Establir relacions entre el medi natural i les activitats humanes.",
		},
	},
	{
		ID:             "medi-ce6",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE6",
		Saber:          "Sostenibilitat i acció",
		Description:    "Analitzar críticament la intervenció humana en l'entorn i actuar per al desenvolupament sostenible.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"6.1. Identificar causes i conseqüències del canvi climàtic.",
			"6.2. Proposar i dur a terme accions per a la sostenibilitat a l'escola o a casa.",
			"6.3. Consumir de manera responsable i crítica.",
		},
	},
	{
		ID:             "medi-ce7",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE7",
		Saber:          "Canvi i continuïtat",
		Description:    "Observar i interpretar canvis i continuïtats del medi, analitzant causalitats per entendre el present.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"7.1. Ordenar temporalment fets històrics rellevants.",
			"7.2. Identificar canvis i continuïtats en la vida quotidiana al llarg del temps.",
			"7.3. Utilitzar fonts d'informació històrica senzilles.",
		},
	},
	{
		ID:             "medi-ce8",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE8",
		Saber:          "Diversitat i igualtat",
		Description:    "Reconèixer i defensar la diversitat i la igualtat de gènere, mostrant empatia i respecte.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"8.1. Mostrar respecte per les diferències individuals i culturals.",
			"8.2. Identificar estereotips de gènere i conductes discriminatòries.",
			"8.3. Promoure la igualtat d'oportunitats en el grup.",
		},
	},
	{
		ID:             "medi-ce9",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE9",
		Saber:          "Ciutadania activa",
		Description:    "Participar en la vida social de manera eficaç i constructiva, respectant els drets humans.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"9.1. Participar activament en la presa de decisions col·lectives a l'aula.",
			"9.2. Respectar les normes de convivència i resoldre conflictes de manera pacífica.",
			"9.3. Conèixer i respectar els drets i deures dels infants.",
		},
	},
	{
		ID:             "medi-ce10",
		Area:           "MEDI NATURAL, SOCIAL I CULTURAL",
		CompetencyCode: "CE10",
		Saber:          "Administració i convivència",
		Description:    "Valorar el funcionament de les administracions públiques i els valors democràtics.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"10.1. Identificar les principals institucions locals i les seves funcions.",
			"10.2. Valorar la importància dels serveis públics per al benestar comú.",
			"10.3. Comprendre el funcionament bàsic dels processos democràtics.",
		},
	},

	// EDUCACIÓ ARTÍSTICA
	{
		ID:             "art-ce1",
		Area:           "EDUCACIÓ ARTÍSTICA",
		CompetencyCode: "CE1",
		Saber:          "Descobriment artístic",
		Description:    "Descobrir propostes artístiques de diferents cultures i èpoques per desenvolupar la curiositat.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Identificar elements bàsics de diferents manifestacions artístiques.",
			"1.2. Mostrar interès i respecte per expressions artístiques diverses.",
			"1.3. Comentar obres d'art utilitzant vocabulari senzill.",
		},
	},
	{
		ID:             "art-ce2",
		Area:           "EDUCACIÓ ARTÍSTICA",
		CompetencyCode: "CE2",
		Saber:          "Investigació cultural",
		Description:    "Investigar i analitzar manifestacions culturals i artístiques i els seus contextos.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Cercar informació sobre autors i obres artístiques.",
			"2.2. Relacionar les obres artístiques amb el seu context cultural.",
			"2.3. Explicar el significat de tradicions culturals pròpies i alienes.",
		},
	},
	{
		ID:             "art-ce3",
		Area:           "EDUCACIÓ ARTÍSTICA",
		CompetencyCode: "CE3",
		Saber:          "Experimentació i expressió",
		Description:    "Experimentar i crear amb so, imatge, cos i mitjans digitals per expressar idees i sentiments.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Utilitzar diferents tècniques i materials per a la creació artística.",
			"3.2. Expressar emocions i idees a través de la producció artística.",
			"3.3. Improvisar amb sons, moviments o elements visuals.",
		},
	},
	{
		ID:             "art-ce4",
		Area:           "EDUCACIÓ ARTÍSTICA",
		CompetencyCode: "CE4",
		Saber:          "Disseny col·laboratiu",
		Description:    "Dissenyar, elaborar i difondre creacions culturals i artístiques col·laboratives.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"4.1. Participar activament en projectes artístics grupals.",
			"4.2. Assumir diferents rols en la producció d'una obra col·lectiva.",
			"4.3. Presentar i compartir les creacions artístiques amb la comunitat.",
		},
	},

	// EDUCACIÓ FÍSICA
	{
		ID:             "ef-ce1",
		Area:           "EDUCACIÓ FÍSICA",
		CompetencyCode: "CE1",
		Saber:          "Resolució motriu",
		Description:    "Resoldre situacions motrius diverses de forma eficaç i creativa.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Adaptar els moviments a diferents situacions i entorns.",
			"1.2. Coordinar els moviments corporals amb eficàcia.",
			"1.3. Prendre decisions motrius ràpides en situacions de joc.",
		},
	},
	{
		ID:             "ef-ce2",
		Area:           "EDUCACIÓ FÍSICA",
		CompetencyCode: "CE2",
		Saber:          "Estil de vida actiu",
		Description:    "Desenvolupar un estil de vida actiu i saludable, incorporant la pràctica habitual d'activitat física.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"2.1. Mostrar hàbits d'higiene i postura corporal saludables.",
			"2.2. Participar regularment en activitats físiques.",
			"2.3. Reconèixer els beneficis de l'activitat física per a la salut.",
		},
	},
	{
		ID:             "ef-ce3",
		Area:           "EDUCACIÓ FÍSICA",
		CompetencyCode: "CE3",
		Saber:          "Expressió i comunicació",
		Description:    "Prendre part en activitats motrius de joc i d'expressió corporal.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"3.1. Utilitzar el cos com a mitjà d'expressió i comunicació.",
			"3.2. Participar en balls i danses senzilles.",
			"3.3. Representar personatges o situacions a través del gest i el moviment.",
		},
	},
	{
		ID:             "ef-ce4",
		Area:           "EDUCACIÓ FÍSICA",
		CompetencyCode: "CE4",
		Saber:          "Entorn i lleure",
		Description:    "Valorar l'entorn com a espai de pràctica d'activitats físiques responsable.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Practicar activitats físiques al medi natural respectant l'entorn.",
			"4.2. Identificar riscos en la pràctica d'activitat física a la natura.",
			"4.3. Col·laborar en la conservació dels espais de pràctica esportiva.",
		},
	},
	{
		ID:             "ef-ce5",
		Area:           "EDUCACIÓ FÍSICA",
		CompetencyCode: "CE5",
		Saber:          "Habilitats socials",
		Description:    "Mostrar comportaments i actituds empàtiques i inclusives en la pràctica d'activitats.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"5.1. Respectar les normes de joc i les decisions arbitrals.",
			"5.2. Col·laborar amb els companys per aconseguir objectius comuns.",
			"5.3. Acceptar les diferències de nivell d'habilitat entre els companys.",
		},
	},

	// LLENGÜES
	{
		ID:             "lleng-ce1",
		Area:           "LLENGÜES",
		CompetencyCode: "CE1",
		Saber:          "Diversitat lingüística",
		Description:    "Prendre consciència de la diversitat lingüística i cultural i valorar-la.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Identificar les llengües de l'entorn proper.",
			"1.2. Mostrar interès per conèixer paraules d'altres llengües.",
			"1.3. Evitar prejudicis lingüístics.",
		},
	},
	{
		ID:             "lleng-ce2",
		Area:           "LLENGÜES",
		CompetencyCode: "CE2",
		Saber:          "Comprensió oral i multimodal",
		Description:    "Comprendre i interpretar textos orals i multimodals, identificant el sentit general.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"2.1. Identificar la idea principal de textos orals.",
			"2.2. Interpretar el llenguatge no verbal en la comunicació oral.",
			"2.3. Seguir instruccions orals complexes.",
		},
	},
	{
		ID:             "lleng-ce3",
		Area:           "LLENGÜES",
		CompetencyCode: "CE3",
		Saber:          "Producció oral",
		Description:    "Produir textos orals i multimodals amb coherència, claredat i registre adequat.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Expressar-se oralment amb fluïdesa i claredat.",
			"3.2. Organitzar les idees en les exposicions orals.",
			"3.3. Utilitzar un registre adequat a la situació comunicativa.",
		},
	},
	{
		ID:             "lleng-ce4",
		Area:           "LLENGÜES",
		CompetencyCode: "CE4",
		Saber:          "Comprensió lectora",
		Description:    "Comprendre i interpretar textos escrits i multimodals, reconeixent el sentit global.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"4.1. Llegir amb fluïdesa i entonació adequades.",
			"4.2. Identificar idees principals i secundàries en textos escrits.",
			"4.3. Fer inferències senzilles a partir del text.",
		},
	},
	{
		ID:             "lleng-ce5",
		Area:           "LLENGÜES",
		CompetencyCode: "CE5",
		Saber:          "Producció escrita",
		Description:    "Produir textos escrits amb adequació, coherència i cohesió.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"5.1. Planificar l'escriptura de textos (pluja d'idees, esquemes).",
			"5.2. Escriure textos estructurats i coherents.",
			"5.3. Revisar i corregir els propis textos.",
		},
	},
	{
		ID:             "lleng-ce6",
		Area:           "LLENGÜES",
		CompetencyCode: "CE6",
		Saber:          "Alfabetització informacional",
		Description:    "Cercar, seleccionar i contrastar informació de diverses fonts de manera planificada.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"6.1. Utilitzar fonts d'informació fiables (biblioteca, internet).",
			"6.2. Organitzar la informació obtinguda per elaborar treballs.",
			"6.3. Citar les fonts d'informació utilitzades.",
		},
	},
	{
		ID:             "lleng-ce7",
		Area:           "LLENGÜES",
		CompetencyCode: "CE7",
		Saber:          "Hàbit lector",
		Description:    "Llegir de manera autònoma obres diverses per gaudi i construcció de la identitat lectora.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"7.1. Mostrar interès per la lectura de diferents gèneres.",
			"7.2. Explicar les pròpies preferències lectores.",
			"7.3. Utilitzar la biblioteca escolar de manera autònoma.",
		},
	},
	{
		ID:             "lleng-ce8",
		Area:           "LLENGÜES",
		CompetencyCode: "CE8",
		Saber:          "Educació literària",
		Description:    "Llegir, interpretar i analitzar obres literàries i reconèixer les convencions del gènere.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"8.1. Identificar els elements bàsics de la narració (personatges, espai, temps).",
			"8.2. Reconèixer recursos literaris senzills (comparació, metàfora).",
			"8.3. Crear textos literaris imitant models llegits.",
		},
	},
	{
		ID:             "lleng-ce9",
		Area:           "LLENGÜES",
		CompetencyCode: "CE9",
		Saber:          "Reflexió sobre la llengua",
		Description:    "Reflexionar sobre el llenguatge i usar terminologia elemental per millorar la comunicació.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"9.1. Identificar les categories gramaticals bàsiques.",
			"9.2. Aplicar les normes ortogràfiques en l'escriptura.",
			"9.3. Reflexionar sobre el significat de les paraules i les seves relacions.",
		},
	},
	{
		ID:             "lleng-ce10",
		Area:           "LLENGÜES",
		CompetencyCode: "CE10",
		Saber:          "Ètica i convivència",
		Description:    "Utilitzar un llenguatge no discriminatori i posar les pràctiques comunicatives al servei de la convivència.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"10.1. Utilitzar un llenguatge respectuós en les interaccions.",
			"10.2. Detectar usos discriminitoris del llenguatge.",
			"10.3. Dialogar per resoldre conflictes.",
		},
	},

	// LLENGUA ESTRANGERA
	{
		ID:             "le-ce1",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE1",
		Saber:          "Interculturalitat",
		Description:    "Comprendre la diversitat lingüística i cultural i valorar-la com a riquesa.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Identificar semblances i diferències entre cultures.",
			"1.2. Mostrar interès pels costums de països de parla estrangera.",
			"1.3. Participar en celebracions culturals a l'aula.",
		},
	},
	{
		ID:             "le-ce2",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE2",
		Saber:          "Comprensió oral",
		Description:    "Comprendre i interpretar textos orals breus i senzills en llengua estàndard.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Comprendre el sentit global de missatges orals senzills.",
			"2.2. Identificar informació específica en àudios o vídeos adaptats.",
			"2.3. Seguir instruccions bàsiques a l'aula.",
		},
	},
	{
		ID:             "le-ce3",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE3",
		Saber:          "Producció oral",
		Description:    "Produir textos orals i participar en interaccions amb coherència i adequació.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"3.1. Participar en converses breus sobre temes quotidians.",
			"3.2. Fer presentacions senzilles preparades prèviament.",
			"3.3. Pronunciar amb la suficient claredat per ser entès.",
		},
	},
	{
		ID:             "le-ce4",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE4",
		Saber:          "Comprensió escrita",
		Description:    "Comprendre textos escrits i multimodals, captant el sentit global.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Comprendre missatges escrits breus i senzills.",
			"4.2. Identificar vocabulari conegut en textos escrits.",
			"4.3. Utilitzar el context per deduir significats.",
		},
	},
	{
		ID:             "le-ce5",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE5",
		Saber:          "Producció escrita",
		Description:    "Produir textos escrits amb adequació i estratègies bàsiques de planificació.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"5.1. Escriure frases i textos curts seguint models.",
			"5.2. Utilitzar vocabulari i estructures bàsiques correctament.",
			"5.3. Revisar els textos escrits abans de lliurar-los.",
		},
	},
	{
		ID:             "le-ce6",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE6",
		Saber:          "Cerca d'informació",
		Description:    "Cercar i seleccionar informació de fonts diverses per transformar-la en coneixement.",
		PlannedGrades:  "3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"6.1. Utilitzar diccionaris i eines digitals per cercar significats.",
			"6.2. Trobar informació específica en pàgines web adaptades.",
			"6.3. Organitzar la informació trobada per a una tasca concreta.",
		},
	},
	{
		ID:             "le-ce8",
		Area:           "LLENGUA ESTRANGERA",
		CompetencyCode: "CE8",
		Saber:          "Mediació",
		Description:    "Mediar entre diferents llengües en situacions predictibles.",
		PlannedGrades:  "3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"8.1. Explicar en la pròpia llengua el significat d'un text senzill en llengua estrangera.",
			"8.2. Ajudar a companys a comprendre instruccions o missatges.",
			"8.3. Utilitzar estratègies per facilitar la comunicació.",
		},
	},

	// MATEMÀTIQUES
	{
		ID:             "mat-ce1",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE1",
		Saber:          "Representació",
		Description:    "Traduir problemes i interpretar situacions quotidianes fent-ne una representació matemàtica.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"1.1. Identificar les dades rellevants en un problema quotidià.",
			"1.2. Representar situacions problemàtiques mitjançant dibuixos, materials manipulables o símbols.",
			"1.3. Interpretar representacions matemàtiques senzilles.",
		},
	},
	{
		ID:             "mat-ce2",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE2",
		Saber:          "Resolució de problemes",
		Description:    "Resoldre problemes aplicant diferents tècniques i formes de raonament.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"2.1. Seleccionar l'estratègia adequada per resoldre un problema.",
			"2.2. Realitzar els càlculs necessaris amb precisió.",
			"2.3. Comprovar la coherència de la solució obtinguda.",
		},
	},
	{
		ID:             "mat-ce3",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE3",
		Saber:          "Conjectures",
		Description:    "Explorar, formular i comprovar conjectures senzilles, reconeixent el valor del raonament.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"3.1. Observar patrons i regularitats en sèries numèriques o geomètriques.",
			"3.2. Formular hipòtesis senzilles sobre relacions matemàtiques.",
			"3.3. Argumentar la validesa d'una conjectura amb exemples.",
		},
	},
	{
		ID:             "mat-ce4",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE4",
		Saber:          "Pensament computacional",
		Description:    "Utilitzar el pensament computacional descomponent problemes i dissenyant algorismes.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Descompondre un problema en parts més petites.",
			"4.2. Seqüenciar passos per resoldre una tasca (algorisme).",
			"4.3. Utilitzar eines digitals per a la resolució de reptes matemàtics.",
		},
	},
	{
		ID:             "mat-ce5",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE5",
		Saber:          "Connexions",
		Description:    "Utilitzar connexions entre idees matemàtiques i altres àrees.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"5.1. Relacionar operacions aritmètiques amb situacions reals.",
			"5.2. Aplicar conceptes geomètrics a l'art o l'entorn.",
			"5.3. Utilitzar les matemàtiques per entendre informació d'altres matèries.",
		},
	},
	{
		ID:             "mat-ce6",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE6",
		Saber:          "Comunicació",
		Description:    "Comunicar i representar conceptes i procediments matemàtics.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"6.1. Explicar el procés seguit per resoldre un problema.",
			"6.2. Utilitzar vocabulari matemàtic adequat.",
			"6.3. Representar dades mitjançant gràfics i taules.",
		},
	},
	{
		ID:             "mat-ce7",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE7",
		Saber:          "Socioemocional",
		Description:    "Desenvolupar destreses personals per gestionar emocions i l'error en l'aprenentatge.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"7.1. Mantenir una actitud positiva davant els reptes matemàtics.",
			"7.2. Acceptar l'error com a part del procés d'aprenentatge.",
			"7.3. Perseverar en la recerca de solucions.",
		},
	},
	{
		ID:             "mat-ce8",
		Area:           "MATEMÀTIQUES",
		CompetencyCode: "CE8",
		Saber:          "Treball en equip",
		Description:    "Participar activament en equips de treball respectant la diversitat.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"8.1. Col·laborar amb els companys en la resolució de problemes.",
			"8.2. Respectar les estratègies proposades pels altres.",
			"8.3. Assumir responsabilitats en el treball de grup.",
		},
	},

	// VALORS CÍVICS I ÈTICS
	{
		ID:             "val-ce1",
		Area:           "VALORS CÍVICS I ÈTICS",
		CompetencyCode: "CE1",
		Saber:          "Autonomia moral",
		Description:    "Identificar aspectes de la pròpia identitat i qüestions ètiques per promoure l'autoconeixement.",
		PlannedGrades:  "5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Reflexionar sobre els propis valors i creences.",
			"1.2. Identificar dilemes ètics senzills en situacions quotidianes.",
			"1.3. Expressar opinions de manera raonada i respectuosa.",
		},
	},
	{
		ID:             "val-ce2",
		Area:           "VALORS CÍVICS I ÈTICS",
		CompetencyCode: "CE2",
		Saber:          "Normes i convivència",
		Description:    "Actuar atenent a normes i valors cívics per promoure una convivència pacífica.",
		PlannedGrades:  "5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"2.1. Complir les normes de convivència establertes.",
			"2.2. Participar en la mediació de conflictes.",
			"2.3. Mostrar actituds de respecte i tolerància.",
		},
	},
	{
		ID:             "val-ce3",
		Area:           "VALORS CÍVICS I ÈTICS",
		CompetencyCode: "CE3",
		Saber:          "Respecte al medi",
		Description:    "Interpretar relacions sistèmiques per desenvolupar un paper actiu en la protecció del planeta.",
		PlannedGrades:  "5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"3.1. Analitzar l'impacte de les accions humanes en el medi ambient.",
			"3.2. Proposar solucions per millorar la sostenibilitat de l'entorn.",
			"3.3. Participar en accions de cura del medi.",
		},
	},
	{
		ID:             "val-ce4",
		Area:           "VALORS CÍVICS I ÈTICS",
		CompetencyCode: "CE4",
		Saber:          "Empatia i cura",
		Description:    "Desenvolupar l'autoestima i l'estima de l'entorn, gestionant emocions amb respecte.",
		PlannedGrades:  "5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"4.1. Identificar i regular les pròpies emocions.",
			"4.2. Mostrar empatia cap als sentiments dels altres.",
			"4.3. Establir relacions basades en la cura i el respecte mutu.",
		},
	},

	// COMPETÈNCIA CIUTADANA
	{
		ID:             "comp-ciut-ce1",
		Area:           "COMPETÈNCIA CIUTADANA",
		CompetencyCode: "CC1",
		Saber:          "Identitat i cultura",
		Description:    "Identificar fets històrics i socials relatius a la pròpia identitat i reflexionar sobre normes.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Conèixer trets bàsics de la pròpia cultura i història.",
			"1.2. Respectar les normes de convivència ciutadana.",
			"1.3. Valorar la diversitat cultural de la societat.",
		},
	},
	{
		ID:             "comp-ciut-ce2",
		Area:           "COMPETÈNCIA CIUTADANA",
		CompetencyCode: "CC2",
		Saber:          "Democràcia i drets",
		Description:    "Participar en activitats comunitàries i resolució de conflictes respectant procediments democràtics.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Participar en processos de votació o presa de decisions a l'aula.",
			"2.2. Respectar els drets de totes les persones.",
			"2.3. Contribuir al benestar de la comunitat escolar.",
		},
	},
	{
		ID:             "comp-ciut-ce3",
		Area:           "COMPETÈNCIA CIUTADANA",
		CompetencyCode: "CC3",
		Saber:          "Valors ètics",
		Description:    "Reflexionar sobre valors i problemes ètics d'actualitat, rebutjant discriminacions.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"3.1. Identificar situacions d'injustícia o discriminació.",
			"3.2. Argumentar opinions ètiques de manera senzilla.",
			"3.3. Defensar la igualtat entre persones.",
		},
	},
	{
		ID:             "comp-ciut-ce4",
		Area:           "COMPETÈNCIA CIUTADANA",
		CompetencyCode: "CC4",
		Saber:          "Acció global",
		Description:    "Identificar relacions sistèmiques i actuar per a la conservació de la biodiversitat.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Comprendre la interconnexió entre accions locals i globals.",
			"4.2. Participar en iniciatives de conservació del medi ambient.",
			"4.3. Promoure hàbits sostenibles.",
		},
	},

	// COMPETÈNCIA DIGITAL
	{
		ID:             "comp-dig-ce1",
		Area:           "COMPETÈNCIA DIGITAL",
		CompetencyCode: "CD1",
		Saber:          "Alfabetització informacional",
		Description:    "Fer cerques guiades a Internet i usar estratègies per al tractament digital de la informació.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"1.1. Realitzar cerques d'informació senzilles a internet.",
			"1.2. Avaluar la fiabilitat bàsica de les fonts digitals.",
			"1.3. Organitzar i desar la informació digital.",
		},
	},
	{
		ID:             "comp-dig-ce2",
		Area:           "COMPETÈNCIA DIGITAL",
		CompetencyCode: "CD2",
		Saber:          "Creació de continguts",
		Description:    "Crear i reelaborar continguts digitals en diferents formats respectant la propietat intel·lectual.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"2.1. Utilitzar editors de text i imatge senzills.",
			"2.2. Crear presentacions multimèdia bàsiques.",
			"2.3. Respectar els drets d'autor en l'ús de imatges i textos.",
		},
	},
	{
		ID:             "comp-dig-ce3",
		Area:           "COMPETÈNCIA DIGITAL",
		CompetencyCode: "CD3",
		Saber:          "Comunicació i col·laboració",
		Description:    "Participar en activitats mitjançant l'ús d'eines virtuals per construir coneixement.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Comunicar-se a través de correu electrònic o plataformes educatives.",
			"3.2. Col·laborar en documents compartits en línia.",
			"3.3. Seguir les normes de netiqueta en la comunicació digital.",
		},
	},
	{
		ID:             "comp-dig-ce4",
		Area:           "COMPETÈNCIA DIGITAL",
		CompetencyCode: "CD4",
		Saber:          "Seguretat",
		Description:    "Conèixer els riscos i adoptar mesures preventives en l'ús de tecnologies digitals.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Protegir les dades personals i contrasenyes.",
			"4.2. Identificar riscos bàsics d'internet (ciberassetjament, virus).",
			"4.3. Fer un ús saludable i equilibrat dels dispositius digitals.",
		},
	},
	{
		ID:             "comp-dig-ce5",
		Area:           "COMPETÈNCIA DIGITAL",
		CompetencyCode: "CD5",
		Saber:          "Resolució de problemes",
		Description:    "Desenvolupar solucions digitals senzilles (programació, robòtica) per resoldre problemes.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"5.1. Programar seqüències d'instruccions senzilles (blocs).",
			"5.2. Utilitzar robots educatius per resoldre reptes.",
			"5.3. Identificar problemes tècnics bàsics i intentar resoldre'ls.",
		},
	},

	// COMPETÈNCIA EMPRENEDORA
	{
		ID:             "comp-emp-ce1",
		Area:           "COMPETÈNCIA EMPRENEDORA",
		CompetencyCode: "CE1",
		Saber:          "Oportunitats i idees",
		Description:    "Reconèixer necessitats i reptes per elaborar idees originals i solucions valuoses.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"1.1. Identificar problemes o necessitats a l'entorn proper.",
			"1.2. Proposar idees creatives per resoldre reptes.",
			"1.3. Avaluar la viabilitat d'una idea senzilla.",
		},
	},
	{
		ID:             "comp-emp-ce2",
		Area:           "COMPETÈNCIA EMPRENEDORA",
		CompetencyCode: "CE2",
		Saber:          "Recursos",
		Description:    "Identificar fortaleses i debilitats pròpies i conèixer elements bàsics econòmics.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Reconèixer les pròpies habilitats i talents.",
			"2.2. Identificar els recursos materials necessaris per a un projecte.",
			"2.3. Comprendre conceptes bàsics com estalvi i pressupost.",
		},
	},
	{
		ID:             "comp-emp-ce3",
		Area:           "COMPETÈNCIA EMPRENEDORA",
		CompetencyCode: "CE3",
		Saber:          "Acció",
		Description:    "Crear idees originals, planificar tasques i cooperar amb altres per dur a terme iniciatives.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Planificar els passos per dur a terme una tasca.",
			"3.2. Treballar en equip per aconseguir un objectiu comú.",
			"3.3. Presentar el resultat final d'un projecte.",
		},
	},

	// COMPETÈNCIA PERSONAL/SOCIAL
	{
		ID:             "comp-pers-ce1",
		Area:           "COMPETÈNCIA PERSONAL/SOCIAL",
		CompetencyCode: "CPSAA1",
		Saber:          "Autoregulació",
		Description:    "Conèixer emocions i comportaments propis i emprar estratègies per gestionar-los.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"1.1. Identificar les pròpies emocions en diferents situacions.",
			"1.2. Utilitzar tècniques senzilles de relaxació o autocontrol.",
			"1.3. Demanar ajuda quan és necessari.",
		},
	},
	{
		ID:             "comp-pers-ce2",
		Area:           "COMPETÈNCIA PERSONAL/SOCIAL",
		CompetencyCode: "CPSAA2",
		Saber:          "Salut",
		Description:    "Conèixer riscos per a la salut i adoptar hàbits saludables per al benestar.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"2.1. Identificar hàbits saludables (alimentació, son, exercici).",
			"2.2. Reconèixer situacions de risc per a la salut física o mental.",
			"2.3. Mantenir una higiene personal adequada.",
		},
	},
	{
		ID:             "comp-pers-ce3",
		Area:           "COMPETÈNCIA PERSONAL/SOCIAL",
		CompetencyCode: "CPSAA3",
		Saber:          "Socialització",
		Description:    "Reconèixer i respectar emocions dels altres i participar activament en treball en grup.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"3.1. Escoltar activament els altres.",
			"3.2. Mostrar empatia i suport als companys.",
			"3.3. Participar constructivament en el treball cooperatiu.",
		},
	},
	{
		ID:             "comp-pers-ce4",
		Area:           "COMPETÈNCIA PERSONAL/SOCIAL",
		CompetencyCode: "CPSAA4",
		Saber:          "Gestió de l'aprenentatge",
		Description:    "Reconèixer el valor de l'esforç i gestionar processos d'aprenentatge.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityMedium,
		Criteria: []string{
			"4.1. Identificar què s'ha après i què cal millorar.",
			"4.2. Organitzar el propi temps i material d'estudi.",
			"4.3. Valorar l'esforç personal com a mitjà per aprendre.",
		},
	},
	{
		ID:             "comp-pers-ce5",
		Area:           "COMPETÈNCIA PERSONAL/SOCIAL",
		CompetencyCode: "CPSAA5",
		Saber:          "Planificació",
		Description:    "Planificar objectius, utilitzar estratègies i participar en l'autoavaluació.",
		PlannedGrades:  "1r, 2n, 3r, 4t, 5è, 6è",
		Intensity:      domain.IntensityHigh,
		Criteria: []string{
			"5.1. Establir objectius d'aprenentatge senzills i realistes.",
			"5.2. Seleccionar estratègies adequades per realitzar una tasca.",
			"5.3. Autoavaluar el propi treball i procés d'aprenentatge.",
		},
	},
}
