package recall

// Fallback questions served when the document base cannot fill a batch.
var defaultItems = []Item{
	{Q: "In Python, how do `list` and `tuple` differ?", A: "A list is mutable, a tuple is immutable.", Cat: "Programming", Type: TypeDefault},
	{Q: "What does the `git push` command do?", A: "Pushes commits from the local repository to the remote repository.", Cat: "Programming", Type: TypeDefault},
	{Q: "What does API stand for?", A: "Application Programming Interface", Cat: "Programming", Type: TypeDefault},

	{Q: "What does GDP stand for?", A: "Gross Domestic Product", Cat: "Economics", Type: TypeDefault},
	{Q: "What is inflation?", A: "A sustained increase in the general price level of goods and services over time, and the loss of value of a currency.", Cat: "Economics", Type: TypeDefault},

	{Q: "What is the derivative of f(x) = x²?", A: "f'(x) = 2x", Cat: "Mathematics", Type: TypeDefault},
	{Q: "What is the approximate value of Pi (π)?", A: "3.14159", Cat: "Mathematics", Type: TypeDefault},

	{Q: "Who formulated the law of universal gravitation?", A: "Isaac Newton", Cat: "Physics", Type: TypeDefault},

	{Q: "What is the chemical formula of water?", A: "H₂O", Cat: "Chemistry", Type: TypeDefault},

	{Q: "What is the difference between 'your' and 'you're' in English?", A: "'Your' is a possessive adjective, 'you're' is short for 'you are'.", Cat: "Foreign Language", Type: TypeDefault},

	{Q: "What do the five letters of the S.M.A.R.T. goal method stand for?", A: "Specific, Measurable, Achievable, Relevant, Time-bound", Cat: "Soft Skills", Type: TypeDefault},

	{Q: "How does supervised learning differ from unsupervised learning?", A: "Supervised learning uses labeled data, while unsupervised learning uses unlabeled data.", Cat: "AI/ML", Type: TypeDefault},
}
