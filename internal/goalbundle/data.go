package goalbundle

// BundleItem is one tool or skill card inside a column.
type BundleItem struct {
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// BundleColumn groups related items under a stage title.
type BundleColumn struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Items       []BundleItem `json:"items"`
}

// Bundle is one full variant: the columns shown together for a role.
type Bundle []BundleColumn

// bundlesByRole maps a role model to its bundle variants. A role may carry
// several variants; one is drawn at random per request.
var bundlesByRole = map[string][]Bundle{
	"AI Expert": {
		{
			{
				Title:       "Capture & Conversion",
				Description: "Stages that process spoken input",
				Items: []BundleItem{
					{Name: "Speech-to-Text (STT)", Desc: "Convert audio into text", Color: "pink", Icon: "bi bi-mic"},
					{Name: "Noise Reduction", Desc: "Clean up the incoming audio signal", Color: "yellow", Icon: "bi bi-volume-mute"},
				},
			},
			{
				Title:       "Language Understanding",
				Description: "Natural language processing",
				Items: []BundleItem{
					{Name: "Natural Language Understanding (NLU)", Desc: "Grasp what the user means", Color: "blue", Icon: "bi bi-chat-text"},
					{Name: "Intent Recognition", Desc: "Work out what the speaker wants", Color: "blue", Icon: "bi bi-lightbulb"},
					{Name: "Entity Extraction", Desc: "Pull out the key pieces of information", Color: "yellow", Icon: "bi bi-search"},
				},
			},
			{
				Title:       "Synthesis & Response",
				Description: "Stages that produce the reply",
				Items: []BundleItem{
					{Name: "Text-to-Speech (TTS)", Desc: "Turn text into natural speech", Color: "green", Icon: "bi bi-megaphone"},
					{Name: "Emotion Synthesis", Desc: "Add feeling to the generated voice", Color: "yellow", Icon: "bi bi-emoji-sunglasses"},
				},
			},
		},
	},
	"Successful Businessman": {
		{
			{
				Title:       "Market Analysis",
				Description: "Tools and methods for sizing up a market",
				Items: []BundleItem{
					{Name: "SWOT Analysis", Desc: "Strengths, weaknesses, opportunities, threats", Color: "pink", Icon: "bi bi-graph-up"},
					{Name: "Customer Research", Desc: "Understand customer needs and behavior", Color: "yellow", Icon: "bi bi-people"},
				},
			},
			{
				Title:       "Financial Management",
				Description: "Finance and investment literacy",
				Items: []BundleItem{
					{Name: "Financial Statements", Desc: "Read and analyze revenue and profit reports", Color: "blue", Icon: "bi bi-currency-dollar"},
					{Name: "Cash Flow Management", Desc: "Keep money moving in and out on schedule", Color: "blue", Icon: "bi bi-cash-stack"},
				},
			},
			{
				Title:       "Business Strategy",
				Description: "Building and executing strategy",
				Items: []BundleItem{
					{Name: "Business Model Canvas", Desc: "A strategic planning tool on one page", Color: "green", Icon: "bi bi-border-all"},
					{Name: "Branding", Desc: "Build and grow a recognizable identity", Color: "yellow", Icon: "bi bi-award"},
				},
			},
		},
	},
	"Game Developer": {
		{
			{
				Title:       "Programming Languages",
				Description: "The common languages of game development",
				Items: []BundleItem{
					{Name: "C# (Unity)", Desc: "The primary language for the Unity engine", Color: "pink", Icon: "bi bi-filetype-cs"},
					{Name: "C++ (Unreal)", Desc: "High-performance language for Unreal", Color: "yellow", Icon: "bi bi-filetype-cpp"},
				},
			},
			{
				Title:       "Development Tools",
				Description: "The major engines and IDEs",
				Items: []BundleItem{
					{Name: "Unity Engine", Desc: "Cross-platform game development", Color: "blue", Icon: "bi bi-unity"},
					{Name: "Unreal Engine", Desc: "A powerful engine for AAA graphics", Color: "blue", Icon: "bi bi-box"},
				},
			},
			{
				Title:       "Game Design",
				Description: "Principles behind engaging play",
				Items: []BundleItem{
					{Name: "Game Design Document (GDD)", Desc: "The blueprint of a game idea", Color: "green", Icon: "bi bi-journal-text"},
					{Name: "Level Design", Desc: "Shape the structure and challenge of levels", Color: "yellow", Icon: "bi bi-map"},
				},
			},
		},
	},
	"Teacher": {
		{
			{
				Title:       "Teaching Methods",
				Description: "Approaches that make lessons land",
				Items: []BundleItem{
					{Name: "Active Learning", Desc: "Keep students doing, not just listening", Color: "pink", Icon: "bi bi-person-raised-hand"},
					{Name: "Differentiated Instruction", Desc: "Adapt lessons to different learners", Color: "yellow", Icon: "bi bi-sliders"},
				},
			},
			{
				Title:       "Classroom Management",
				Description: "Keeping the room focused and fair",
				Items: []BundleItem{
					{Name: "Routines & Signals", Desc: "Predictable structure lowers friction", Color: "blue", Icon: "bi bi-bell"},
					{Name: "Positive Reinforcement", Desc: "Reward the behavior you want repeated", Color: "green", Icon: "bi bi-hand-thumbs-up"},
				},
			},
			{
				Title:       "Assessment",
				Description: "Measuring what was actually learned",
				Items: []BundleItem{
					{Name: "Formative Assessment", Desc: "Quick checks during the lesson", Color: "green", Icon: "bi bi-clipboard-check"},
					{Name: "Rubrics", Desc: "Transparent grading criteria", Color: "yellow", Icon: "bi bi-list-check"},
				},
			},
		},
	},
	"Scientist": {
		{
			{
				Title:       "Research Design",
				Description: "Framing questions worth answering",
				Items: []BundleItem{
					{Name: "Hypothesis Building", Desc: "Turn curiosity into a testable claim", Color: "pink", Icon: "bi bi-question-circle"},
					{Name: "Literature Review", Desc: "Know what the field already knows", Color: "yellow", Icon: "bi bi-journals"},
				},
			},
			{
				Title:       "Experimentation",
				Description: "Collecting evidence carefully",
				Items: []BundleItem{
					{Name: "Controlled Experiments", Desc: "Isolate the variable under study", Color: "blue", Icon: "bi bi-eyedropper"},
					{Name: "Data Collection", Desc: "Record observations systematically", Color: "blue", Icon: "bi bi-table"},
				},
			},
			{
				Title:       "Analysis & Publication",
				Description: "From raw data to shared knowledge",
				Items: []BundleItem{
					{Name: "Statistical Analysis", Desc: "Separate signal from noise", Color: "green", Icon: "bi bi-bar-chart"},
					{Name: "Scientific Writing", Desc: "Publish results others can build on", Color: "yellow", Icon: "bi bi-pen"},
				},
			},
		},
	},
	"Engineer": {
		{
			{
				Title:       "Analysis & Design",
				Description: "Solving problems with engineering principles",
				Items: []BundleItem{
					{Name: "Requirements Analysis", Desc: "Pin down the criteria and constraints", Color: "teal", Icon: "bi bi-list-check"},
					{Name: "System Design", Desc: "Shape a concrete technical solution", Color: "purple", Icon: "bi bi-gear"},
					{Name: "Simulation & Testing", Desc: "Evaluate the design before building it", Color: "pink", Icon: "bi bi-speedometer2"},
				},
			},
			{
				Title:       "Build & Deploy",
				Description: "Turning the design into reality",
				Items: []BundleItem{
					{Name: "Implementation", Desc: "Build or code the product or system", Color: "green", Icon: "bi bi-code-slash"},
					{Name: "Deployment & Operations", Desc: "Put it into use and keep it running", Color: "blue", Icon: "bi bi-play-circle"},
					{Name: "Troubleshooting", Desc: "Fix what breaks in the field", Color: "red", Icon: "bi bi-tools"},
				},
			},
			{
				Title:       "Research & Improvement",
				Description: "Raising efficiency and finding better ways",
				Items: []BundleItem{
					{Name: "New Technology Research", Desc: "Explore advances in the discipline", Color: "yellow", Icon: "bi bi-lightbulb-fill"},
					{Name: "Process Improvement", Desc: "Optimize how the work gets done", Color: "orange", Icon: "bi bi-arrow-repeat"},
				},
			},
		},
	},
}

// EmptyProfileBundle is shown when no content exists for any role.
var EmptyProfileBundle = Bundle{
	{
		Title:       "No data yet",
		Description: "Set up your profile to get suggestions.",
		Items:       []BundleItem{},
	},
}
