package tarot

// Card is a single tarot card with its short reading.
type Card struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Meaning string `json:"meaning"`
}

// Deck is the simplified 62-card deck used for daily readings: the full
// major arcana plus ace-to-ten of each suit.
var Deck = []Card{
	// Major Arcana
	{0, "The Fool", "🃏", "New beginnings, spontaneity, a leap of faith"},
	{1, "The Magician", "🎩", "Manifestation, resourcefulness, power"},
	{2, "The High Priestess", "🌙", "Intuition, sacred knowledge, divine feminine"},
	{3, "The Empress", "👑", "Femininity, beauty, nature, nurturing, abundance"},
	{4, "The Emperor", "⚔️", "Authority, structure, control, fatherhood"},
	{5, "The Hierophant", "📿", "Spiritual wisdom, religious beliefs, tradition"},
	{6, "The Lovers", "💕", "Love, harmony, relationships, values alignment"},
	{7, "The Chariot", "🏇", "Control, willpower, success, determination"},
	{8, "Strength", "🦁", "Strength, courage, patience, control, compassion"},
	{9, "The Hermit", "🕯️", "Soul searching, introspection, inner guidance"},
	{10, "Wheel of Fortune", "🎡", "Good luck, karma, life cycles, destiny"},
	{11, "Justice", "⚖️", "Justice, fairness, truth, cause and effect"},
	{12, "The Hanged Man", "🙃", "Pause, surrender, letting go, new perspectives"},
	{13, "Death", "🦋", "Endings, change, transformation, transition"},
	{14, "Temperance", "🧘", "Balance, moderation, patience, purpose"},
	{15, "The Devil", "😈", "Shadow self, attachment, addiction, restriction"},
	{16, "The Tower", "⚡", "Sudden change, upheaval, chaos, revelation"},
	{17, "The Star", "⭐", "Hope, faith, purpose, renewal, spirituality"},
	{18, "The Moon", "🌕", "Illusion, fear, anxiety, subconscious, intuition"},
	{19, "The Sun", "☀️", "Positivity, fun, warmth, success, vitality"},
	{20, "Judgement", "📯", "Judgement, rebirth, inner calling, absolution"},
	{21, "The World", "🌍", "Completion, accomplishment, travel, fulfillment"},

	// Wands (Fire - Passion, Energy)
	{22, "Ace of Wands", "🔥", "Inspiration, new opportunities, growth, potential"},
	{23, "Two of Wands", "🗺️", "Planning, making decisions, leaving comfort zone"},
	{24, "Three of Wands", "🚢", "Progress, expansion, foresight, overseas opportunities"},
	{25, "Four of Wands", "🎉", "Celebration, harmony, marriage, home, community"},
	{26, "Five of Wands", "⚔️", "Conflict, disagreements, competition, tension"},
	{27, "Six of Wands", "🏆", "Success, public recognition, progress, self-confidence"},
	{28, "Seven of Wands", "🛡️", "Challenge, competition, protection, perseverance"},
	{29, "Eight of Wands", "💨", "Movement, fast paced change, action, alignment"},
	{30, "Nine of Wands", "🏰", "Resilience, courage, persistence, boundaries"},
	{31, "Ten of Wands", "🎒", "Burden, responsibility, hard work, stress"},

	// Cups (Water - Emotions, Relationships)
	{32, "Ace of Cups", "💖", "Love, new relationships, compassion, creativity"},
	{33, "Two of Cups", "🤝", "Unified love, partnership, mutual attraction"},
	{34, "Three of Cups", "🥂", "Celebration, friendship, creativity, collaboration"},
	{35, "Four of Cups", "🤔", "Meditation, contemplation, apathy, reevaluation"},
	{36, "Five of Cups", "😢", "Regret, failure, disappointment, pessimism"},
	{37, "Six of Cups", "🎁", "Revisiting the past, childhood memories, innocence"},
	{38, "Seven of Cups", "☁️", "Opportunities, choices, wishful thinking, illusion"},
	{39, "Eight of Cups", "🚶", "Disappointment, abandonment, withdrawal, escapism"},
	{40, "Nine of Cups", "😊", "Contentment, satisfaction, gratitude, wish come true"},
	{41, "Ten of Cups", "🏡", "Divine love, blissful relationships, harmony, alignment"},

	// Swords (Air - Thoughts, Conflict)
	{42, "Ace of Swords", "🗡️", "Breakthroughs, new ideas, mental clarity, success"},
	{43, "Two of Swords", "🙈", "Difficult decisions, weighing options, stalemate"},
	{44, "Three of Swords", "💔", "Heartbreak, emotional pain, sorrow, grief"},
	{45, "Four of Swords", "😴", "Rest, relaxation, meditation, contemplation"},
	{46, "Five of Swords", "😏", "Conflict, disagreements, competition, defeat"},
	{47, "Six of Swords", "⛵", "Transition, change, rite of passage, moving on"},
	{48, "Seven of Swords", "🥷", "Betrayal, deception, getting away with something"},
	{49, "Eight of Swords", "🪢", "Negative thoughts, self-imposed restriction, victim"},
	{50, "Nine of Swords", "😰", "Anxiety, worry, fear, depression, nightmares"},
	{51, "Ten of Swords", "🌅", "Painful endings, deep wounds, betrayal, crisis"},

	// Pentacles (Earth - Material, Practical)
	{52, "Ace of Pentacles", "💰", "Opportunity, prosperity, new venture, manifestation"},
	{53, "Two of Pentacles", "🤹", "Multiple priorities, time management, adaptability"},
	{54, "Three of Pentacles", "👷", "Teamwork, collaboration, learning, implementation"},
	{55, "Four of Pentacles", "🔒", "Saving money, security, conservatism, scarcity"},
	{56, "Five of Pentacles", "❄️", "Financial loss, poverty, lack, isolation"},
	{57, "Six of Pentacles", "🤲", "Giving, receiving, sharing wealth, generosity"},
	{58, "Seven of Pentacles", "🌱", "Long-term view, sustainable results, perseverance"},
	{59, "Eight of Pentacles", "🔨", "Apprenticeship, repetitive tasks, mastery, skill"},
	{60, "Nine of Pentacles", "🌺", "Abundance, luxury, self-sufficiency, financial independence"},
	{61, "Ten of Pentacles", "🏰", "Wealth, financial security, family, long-term success"},
}
